package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadHook is called after every load attempt with the source name and the
// resulting error (nil on success).
type LoadHook func(source string, err error)

// Option configures a file repository
type Option func(*jsonFile)

// WithLoadHook registers a hook observing every file load.
func WithLoadHook(hook LoadHook) Option {
	return func(f *jsonFile) {
		f.hook = hook
	}
}

type jsonFile struct {
	name string
	path string
	hook LoadHook
}

func newJSONFile(name, path string, opts ...Option) *jsonFile {
	f := &jsonFile{name: name, path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// load decodes the file into dst. A missing or blank file leaves dst untouched.
func (f *jsonFile) load(ctx context.Context, dst any) error {
	err := f.read(ctx, dst)
	if f.hook != nil {
		f.hook(f.name, err)
	}
	return err
}

func (f *jsonFile) read(ctx context.Context, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s file %s: %w", f.name, f.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s file %s: %w", f.name, f.path, err)
	}
	return nil
}
