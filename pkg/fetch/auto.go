package fetch

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Auto dispatches to an HTTP or File fetcher by location shape, so a
// wrapper chain may freely mix remote tags and local sample files.
type Auto struct {
	File *File
	HTTP *HTTP
}

// NewAuto creates the default fetcher used by the client facade.
func NewAuto(baseDir string, timeout time.Duration, logger *slog.Logger) *Auto {
	return &Auto{
		File: NewFile(baseDir, logger),
		HTTP: NewHTTP(timeout, logger),
	}
}

// Fetch implements Fetcher.
func (a *Auto) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return a.HTTP.Fetch(ctx, location)
	}
	return a.File.Fetch(ctx, location)
}
