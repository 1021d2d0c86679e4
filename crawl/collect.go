package crawl

import (
	"context"
	"net/url"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

// Collector gathers every font face referenced by a webpage: inline style
// blocks first, then each external stylesheet in document order.
type Collector struct {
	Fetcher     webfonts.Fetcher
	Locator     webfonts.SourceLocator
	Extractor   webfonts.FaceExtractor
	RateLimiter webfonts.DomainLimiter
	RetryDelays []time.Duration
}

// Collect fetches pageURL and returns all font faces its stylesheets
// declare. Failure to fetch the page itself is fatal; a stylesheet that
// cannot be fetched or parsed costs only its own results.
func (c *Collector) Collect(ctx context.Context, pageURL string, progress ProgressFunc) ([]*webfonts.FontFace, error) {
	if err := c.wait(ctx, pageURL); err != nil {
		return nil, err
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, c.RetryDelays)
	if err != nil {
		return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "fetch page %s: %v", pageURL, err)
	}
	notify(progress, ProgressEvent{Type: ProgressPageFetched, URL: pageURL})

	sources, err := c.Locator.Locate(string(html), pageURL)
	if err != nil {
		return nil, err
	}

	var fonts []*webfonts.FontFace

	// Inline blocks resolve relative URLs against the page itself.
	for _, block := range sources.InlineBlocks {
		faces, err := c.Extractor.Extract(ctx, block, pageURL)
		if err != nil {
			return fonts, err
		}
		fonts = append(fonts, faces...)
		notify(progress, ProgressEvent{Type: ProgressInlineParsed, URL: pageURL})
	}

	for _, cssURL := range sources.StylesheetURLs {
		if err := ctx.Err(); err != nil {
			return fonts, err
		}
		if err := c.wait(ctx, cssURL); err != nil {
			return fonts, err
		}
		cssText, err := FetchWithRetryDelays(ctx, cssURL, c.Fetcher.Fetch, c.RetryDelays)
		if err != nil {
			notify(progress, ProgressEvent{Type: ProgressStylesheetFailed, URL: cssURL, Err: err})
			continue
		}
		faces, err := c.Extractor.Extract(ctx, string(cssText), cssURL)
		if err != nil {
			notify(progress, ProgressEvent{Type: ProgressStylesheetFailed, URL: cssURL, Err: err})
			continue
		}
		fonts = append(fonts, faces...)
		notify(progress, ProgressEvent{Type: ProgressStylesheetFetched, URL: cssURL})
	}

	return fonts, nil
}

// wait applies the per-domain rate limit, if one is configured.
func (c *Collector) wait(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.RateLimiter.Wait(ctx, u.Host)
}
