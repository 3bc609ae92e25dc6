// Package http provides the HTTP implementation of getnovel.Fetcher used
// for chapter pages, novel pages, and cover images.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	getnovel "github.com/Clickman777/TgBot"
)

// DefaultFetchTimeout is the fixed request timeout for all fetches.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the client to the source site.
const userAgent = "GetNovel/1.0 (+https://github.com/Clickman777/TgBot)"

// Ensure Fetcher implements getnovel.Fetcher at compile time.
var _ getnovel.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw resources with a single GET per call. No retries;
// a failed fetch is reported to the caller and retried, if at all, on a
// later run.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues one GET for the URL and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, getnovel.Errorf(getnovel.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, getnovel.Errorf(getnovel.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return body, nil
}

// Close releases resources. A no-op for the plain HTTP client.
func (f *Fetcher) Close() error {
	return nil
}
