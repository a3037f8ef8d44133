// Package platform is the composition root connecting the VAST mapper,
// content fetchers, chain resolver and stitcher behind one client.
package platform

import (
	"context"
	"log/slog"

	"github.com/vastitch/vastitch/pkg/fetch"
	"github.com/vastitch/vastitch/pkg/resolve"
	"github.com/vastitch/vastitch/pkg/stitch"
	"github.com/vastitch/vastitch/pkg/vast"
)

// Client bundles a fetcher and resolver behind the three operations of
// the tool: parse, unwrap, stitch.
type Client struct {
	fetcher  fetch.Fetcher
	resolver *resolve.Resolver
	logger   *slog.Logger
}

// New builds a Client from functional options.
func New(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	fetcher := o.fetcher
	if fetcher == nil {
		fetcher = fetch.NewAuto(o.baseDir, o.fetchTimeout, logger)
	}

	return &Client{
		fetcher:  fetcher,
		resolver: resolve.New(fetcher, o.maxDepth, logger),
		logger:   logger,
	}
}

// Parse fetches one location and parses it, without following wrappers.
func (c *Client) Parse(ctx context.Context, location string) (*vast.Document, error) {
	data, err := c.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return vast.Parse(data)
}

// Resolve follows the wrapper chain from location and returns every link.
func (c *Client) Resolve(ctx context.Context, location string) ([]resolve.Link, error) {
	return c.resolver.Resolve(ctx, location)
}

// Unwrap follows the wrapper chain and returns the terminal document,
// whose first Ad is the InLine.
func (c *Client) Unwrap(ctx context.Context, location string) (*vast.Document, error) {
	links, err := c.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	return links[len(links)-1].Doc, nil
}

// Stitch follows the wrapper chain and merges every level's tracking data
// into the terminal InLine, returning one self-contained document.
func (c *Client) Stitch(ctx context.Context, location string) (*vast.Document, error) {
	links, err := c.resolver.Resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	return stitch.Stitch(links)
}
