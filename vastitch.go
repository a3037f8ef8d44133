package vastitch

import (
	"log/slog"
	"time"

	"github.com/vastitch/vastitch/internal/platform"
	"github.com/vastitch/vastitch/pkg/fetch"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Client is the public entry point; see internal/platform for wiring.
type Client = platform.Client

// --- Configuration ---

// Option defines a functional option for configuring a Client.
type Option = platform.Option

// WithFetcher injects a custom content fetcher.
func WithFetcher(f fetch.Fetcher) Option {
	return platform.WithFetcher(f)
}

// WithMaxDepth bounds how many wrappers a chain may pass through.
func WithMaxDepth(depth int) Option {
	return platform.WithMaxDepth(depth)
}

// WithFetchTimeout sets the per-request budget of the HTTP fetcher.
func WithFetchTimeout(timeout time.Duration) Option {
	return platform.WithFetchTimeout(timeout)
}

// WithBaseDir sets the directory against which relative file locations
// are resolved.
func WithBaseDir(dir string) Option {
	return platform.WithBaseDir(dir)
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// --- Factory ---

// New creates a new Client.
func New(opts ...Option) *Client {
	return platform.New(opts...)
}
