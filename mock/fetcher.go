// Package mock provides function-field mock implementations of the root
// package interfaces for use in tests.
package mock

import (
	"context"

	getnovel "github.com/Clickman777/TgBot"
)

var _ getnovel.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of getnovel.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
