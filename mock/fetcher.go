// Package mock provides hand-written mock implementations of the webfonts
// interfaces for use in tests.
package mock

import (
	"context"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webfonts.Fetcher.
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
