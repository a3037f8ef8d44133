// Package resolve follows VAST wrapper chains until an InLine ad is found.
//
// Resolution is an explicit loop over an accumulator, never recursion, so
// the depth bound and the cycle check are enforced independently of the
// call stack. The two safeguards are deliberately independent: the visited
// set catches true cycles, while the depth bound caps the cost of a server
// that keeps minting fresh wrapper URLs forever.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vastitch/vastitch/pkg/fetch"
	"github.com/vastitch/vastitch/pkg/vast"
)

// DefaultMaxDepth is the number of wrappers a chain may pass through
// before resolution gives up.
const DefaultMaxDepth = 5

// Common errors. Every failure is terminal for the whole resolution; no
// partial chain is returned.
var (
	ErrCircularReference = errors.New("circular wrapper reference")
	ErrMaxDepthExceeded  = errors.New("maximum wrapper depth exceeded")
	ErrNoInLine          = errors.New("no InLine ad in wrapper chain")
)

// CycleError reports a repeated location, carrying the full trail walked
// so far with the repeat as its last entry.
type CycleError struct {
	Trail []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular wrapper reference: %s", strings.Join(e.Trail, " -> "))
}

// Is makes a *CycleError match ErrCircularReference via errors.Is.
func (e *CycleError) Is(target error) bool { return target == ErrCircularReference }

// Link is one resolved step of a wrapper chain. Index 0 is the starting
// location; the last link of a successful resolution is the InLine.
type Link struct {
	Location string
	Doc      *vast.Document
	AdIndex  int
}

// Ad returns the link's primary ad, or nil if the document is empty.
func (l Link) Ad() *vast.Ad {
	if l.Doc == nil || l.AdIndex < 0 || l.AdIndex >= len(l.Doc.Ads) {
		return nil
	}
	return &l.Doc.Ads[l.AdIndex]
}

// Resolver walks wrapper chains through an injected Fetcher.
//
// A Resolver carries no per-call state: every Resolve call owns its own
// visited set and link list, so concurrent resolutions need no
// coordination.
type Resolver struct {
	fetcher  fetch.Fetcher
	maxDepth int
	logger   *slog.Logger
}

// New creates a Resolver. A non-positive maxDepth falls back to
// DefaultMaxDepth.
func New(f fetch.Fetcher, maxDepth int, logger *slog.Logger) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{fetcher: f, maxDepth: maxDepth, logger: logger}
}

// Resolve fetches and parses documents starting at start, following each
// Wrapper's VASTAdTagURI until an InLine ad terminates the chain.
//
// Only the first Ad of each document is classified and followed; sibling
// Ads of a multi-ad document are carried in the link's Doc untouched.
// A Wrapper below one that declared followAdditionalWrappers="false"
// cannot legally continue the chain and fails with ErrNoInLine.
func (r *Resolver) Resolve(ctx context.Context, start string) ([]Link, error) {
	visited := make(map[string]struct{})
	var trail []string
	var links []Link

	location := start
	follow := true

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, seen := visited[location]; seen {
			return nil, &CycleError{Trail: append(trail, location)}
		}
		visited[location] = struct{}{}
		trail = append(trail, location)

		data, err := r.fetcher.Fetch(ctx, location)
		if err != nil {
			return nil, err
		}

		doc, err := vast.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", location, err)
		}
		if len(doc.Ads) == 0 {
			return nil, fmt.Errorf("%s: empty document: %w", location, ErrNoInLine)
		}

		links = append(links, Link{Location: location, Doc: doc})
		ad := &doc.Ads[0]

		if ad.IsInLine() {
			r.logger.Debug("chain resolved", "start", start, "links", len(links))
			return links, nil
		}

		w := ad.Wrapper
		if !follow {
			return nil, fmt.Errorf("%s: wrapper below followAdditionalWrappers=false: %w", location, ErrNoInLine)
		}
		// All links so far are wrappers; their count is the chain depth.
		if len(links) > r.maxDepth {
			return nil, fmt.Errorf("chain from %s exceeds %d wrappers: %w", start, r.maxDepth, ErrMaxDepthExceeded)
		}

		follow = w.FollowsAdditional()
		r.logger.Debug("following wrapper", "location", location, "next", w.AdTagURI.Value, "depth", len(links))
		location = w.AdTagURI.Value
	}
}
