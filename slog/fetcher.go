// Package slog provides logging decorators for the root package interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure LoggingFetcher implements getnovel.Fetcher.
var _ getnovel.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   getnovel.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next getnovel.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
