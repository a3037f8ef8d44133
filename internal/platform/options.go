package platform

import (
	"log/slog"
	"time"

	"github.com/vastitch/vastitch/pkg/fetch"
	"github.com/vastitch/vastitch/pkg/resolve"
)

// options holds the internal configuration for a Client.
type options struct {
	fetcher      fetch.Fetcher
	logger       *slog.Logger
	maxDepth     int
	fetchTimeout time.Duration
	baseDir      string
}

// Option defines a functional option for configuring a Client.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		maxDepth:     resolve.DefaultMaxDepth,
		fetchTimeout: fetch.DefaultTimeout,
	}
}

// WithFetcher injects a custom content fetcher (e.g. a mock, or a wrapper
// adding a retry policy). If provided, the default auto fetcher is skipped
// and WithFetchTimeout/WithBaseDir have no effect.
func WithFetcher(f fetch.Fetcher) Option {
	return func(o *options) {
		o.fetcher = f
	}
}

// WithMaxDepth bounds how many wrappers a chain may pass through.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithFetchTimeout sets the per-request budget of the HTTP fetcher.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.fetchTimeout = timeout
	}
}

// WithBaseDir sets the directory against which relative file locations
// are resolved.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
