package handlers

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"

	"github.com/Lixing-Zhang/goods-catalog/internal/apierr"
)

// ImageHandler serves product images from a single directory.
// Reads are confined to that directory; names escaping it are rejected.
type ImageHandler struct {
	dir    string
	logger *slog.Logger
}

// NewImageHandler creates an image handler rooted at dir
func NewImageHandler(dir string, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		dir:    dir,
		logger: logger,
	}
}

// ServeHTTP handles {image prefix}/*. The remainder of the path names the
// file inside the image directory. Missing or unreadable files get a 404.
func (h *ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "*")

	data, err := h.read(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("image read rejected", "name", name, "error", err)
		}
		WriteError(w, apierr.BadRoute, h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write image", "name", name, "error", err)
	}
}

func (h *ImageHandler) read(name string) ([]byte, error) {
	if name == "" || path.IsAbs(name) {
		return nil, fs.ErrNotExist
	}

	root, err := os.OpenRoot(h.dir)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	f, err := root.Open(path.Clean(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fs.ErrNotExist
	}

	return io.ReadAll(f)
}
