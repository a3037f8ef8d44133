package fetch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// File reads VAST documents from the local filesystem. It accepts plain
// paths and file:// URLs. Relative paths that do not resolve from the
// working directory are retried under BaseDir, so wrapper chains shipped
// as a directory of samples can reference each other by bare filename.
type File struct {
	BaseDir string
	Logger  *slog.Logger
}

// NewFile creates a filesystem fetcher. baseDir may be empty.
func NewFile(baseDir string, logger *slog.Logger) *File {
	if logger == nil {
		logger = slog.Default()
	}
	return &File{BaseDir: baseDir, Logger: logger}
}

// Fetch implements Fetcher.
func (f *File) Fetch(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Location: location, Cause: err}
	}

	path := strings.TrimPrefix(location, "file://")
	if !filepath.IsAbs(path) && f.BaseDir != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = filepath.Join(f.BaseDir, path)
		}
	}

	f.Logger.Debug("reading file", "location", location, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Location: location, Cause: err}
	}
	return data, nil
}
