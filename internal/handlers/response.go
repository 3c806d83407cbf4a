package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/goods-catalog/internal/apierr"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Records are passed through as stored; keep <, > and & literal.
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an application error as {"message": ...} with its status
func WriteError(w http.ResponseWriter, e *apierr.Error, logger *slog.Logger) {
	WriteJSON(w, e.StatusCode, e.Payload(), logger)
}

// writeFailure translates err at the HTTP boundary. Anything that is not an
// application error is logged and reported as a generic server error.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	e, degraded := apierr.From(err)
	if degraded {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	WriteError(w, e, logger)
}
