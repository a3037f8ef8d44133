// Package fetch abstracts retrieving raw VAST bytes from a location.
//
// The chain resolver only depends on the Fetcher interface, so local files
// and remote tags are interchangeable at its boundary. No implementation
// retries: retry policy, if desired, belongs to the caller wrapping a
// Fetcher.
package fetch

import (
	"context"
	"errors"
	"fmt"
)

// ErrFetchFailed indicates a location was unreachable or unreadable.
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher retrieves the raw content of a location. A location is either a
// filesystem path or a URI; implementations decide which they support.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Error wraps a fetch failure with the offending location so callers can
// diagnose a failed chain without re-running it.
type Error struct {
	Location string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Location, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes every *Error match ErrFetchFailed via errors.Is.
func (e *Error) Is(target error) bool { return target == ErrFetchFailed }
