package webfonts

import "context"

// Fetcher retrieves raw bytes from URLs. It is the single transport
// boundary for HTML pages, stylesheets, @import targets, and font binaries.
type Fetcher interface {
	// Fetch retrieves the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
