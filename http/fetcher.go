// Package http provides an HTTP-based implementation of webfonts.Fetcher
// for retrieving pages, stylesheets, and font binaries.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent mimics a desktop browser. Many font CDNs refuse
// requests that do not look like they come from a browser.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Ensure Fetcher implements webfonts.Fetcher at compile time.
var _ webfonts.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources over HTTP. Textual responses are converted
// to UTF-8 based on their declared charset so downstream parsers always
// see valid UTF-8; binary responses pass through untouched.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the resource at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EINVALID, "build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body := io.Reader(resp.Body)
	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "text/") {
		decoded, err := charset.NewReader(resp.Body, contentType)
		if err == nil {
			body = decoded
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "read body of %s: %v", url, err)
	}

	return data, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
