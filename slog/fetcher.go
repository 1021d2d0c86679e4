// Package slog provides logging decorators for the webfonts interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// Ensure Fetcher implements webfonts.Fetcher at compile time.
var _ webfonts.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a webfonts.Fetcher with debug logging for every fetch.
type Fetcher struct {
	next   webfonts.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next webfonts.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	data, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
