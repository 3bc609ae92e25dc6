package getnovel

import "context"

// Fetcher retrieves a single raw resource (chapter page, novel page, cover
// image) over the network. One attempt per call; no retry logic.
type Fetcher interface {
	// Fetch issues one GET for the URL and returns the response body.
	// The context controls timeout and cancellation; implementations also
	// carry a fixed request timeout of their own.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
