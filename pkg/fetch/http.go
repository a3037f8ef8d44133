package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single tag request. Ad servers that cannot
// answer within a few seconds are treated as unreachable.
const DefaultTimeout = 3 * time.Second

// maxBodySize caps a response body; VAST documents are small and an
// unbounded read from a misbehaving server must not exhaust memory.
const maxBodySize = 8 << 20

// HTTP fetches VAST documents over http(s). The timeout is enforced here,
// not by the resolver.
type HTTP struct {
	Client *http.Client
	Logger *slog.Logger
}

// NewHTTP creates an HTTP fetcher. A non-positive timeout falls back to
// DefaultTimeout.
func NewHTTP(timeout time.Duration, logger *slog.Logger) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTP{
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

// Fetch implements Fetcher. Each request carries a short id so log lines
// from interleaved resolutions can be correlated.
func (h *HTTP) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, &Error{Location: location, Cause: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &Error{Location: location, Cause: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}

	reqID := uuid.NewString()[:8]
	start := time.Now()
	h.Logger.Debug("fetching tag", "req_id", reqID, "url", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Location: location, Cause: err}
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := h.Client.Do(req)
	if err != nil {
		h.Logger.Debug("request failed", "req_id", reqID, "elapsed", time.Since(start), "error", err)
		return nil, &Error{Location: location, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Location: location, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &Error{Location: location, Cause: err}
	}

	h.Logger.Debug("fetched tag",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start),
	)
	return body, nil
}
