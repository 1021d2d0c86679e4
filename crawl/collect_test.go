package crawl_test

import (
	"context"
	"testing"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"github.com/ibehnam/webpage-fonts-downloader/crawl"
	"github.com/ibehnam/webpage-fonts-downloader/css"
	"github.com/ibehnam/webpage-fonts-downloader/goquery"
	"github.com/ibehnam/webpage-fonts-downloader/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noRetries disables backoff so failure paths return immediately.
var noRetries = []time.Duration{}

func TestCollectorCollect(t *testing.T) {
	t.Parallel()

	t.Run("collects inline blocks then external stylesheets in order", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				switch url {
				case "https://example.com/page":
					return []byte(`<html><head>
<style>@font-face { font-family: Inline; src: url(inline.woff2); }</style>
<link rel="stylesheet" href="/css/a.css">
<link rel="stylesheet" href="/css/b.css">
</head></html>`), nil
				case "https://example.com/css/a.css":
					return []byte(`@font-face { font-family: ExtA; src: url(a.woff2); }`), nil
				case "https://example.com/css/b.css":
					return []byte(`@font-face { font-family: ExtB; src: url(b.woff2); }`), nil
				}
				return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "no fixture for %s", url)
			},
		}

		collector := &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RetryDelays: noRetries,
		}

		fonts, err := collector.Collect(context.Background(), "https://example.com/page", nil)

		require.NoError(t, err)
		require.Len(t, fonts, 3)
		assert.Equal(t, "Inline", fonts[0].Family)
		assert.Equal(t, "ExtA", fonts[1].Family)
		assert.Equal(t, "ExtB", fonts[2].Family)
		// Inline resolves against the page, external against the stylesheet.
		assert.Equal(t, "https://example.com/inline.woff2", fonts[0].Sources[0].URL)
		assert.Equal(t, "https://example.com/css/a.woff2", fonts[1].Sources[0].URL)
	})

	t.Run("page fetch failure is fatal", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "HTTP 500 for %s", url)
			},
		}

		collector := &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RetryDelays: noRetries,
		}

		_, err := collector.Collect(context.Background(), "https://example.com/page", nil)

		require.Error(t, err)
		assert.Equal(t, webfonts.EUNAVAILABLE, webfonts.ErrorCode(err))
	})

	t.Run("stylesheet fetch failure skips that stylesheet only", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				switch url {
				case "https://example.com/page":
					return []byte(`<html><head>
<link rel="stylesheet" href="/down.css">
<link rel="stylesheet" href="/up.css">
</head></html>`), nil
				case "https://example.com/up.css":
					return []byte(`@font-face { font-family: Up; src: url(up.woff2); }`), nil
				}
				return nil, webfonts.Errorf(webfonts.EUNAVAILABLE, "HTTP 404 for %s", url)
			},
		}

		var failed []string
		progress := func(event crawl.ProgressEvent) {
			if event.Type == crawl.ProgressStylesheetFailed {
				failed = append(failed, event.URL)
			}
		}

		collector := &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RetryDelays: noRetries,
		}

		fonts, err := collector.Collect(context.Background(), "https://example.com/page", progress)

		require.NoError(t, err)
		require.Len(t, fonts, 1)
		assert.Equal(t, "Up", fonts[0].Family)
		assert.Equal(t, []string{"https://example.com/down.css"}, failed)
	})

	t.Run("page without stylesheets yields zero fonts", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				return []byte(`<html><body><p>plain</p></body></html>`), nil
			},
		}

		collector := &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RetryDelays: noRetries,
		}

		fonts, err := collector.Collect(context.Background(), "https://example.com/page", nil)

		require.NoError(t, err)
		assert.Empty(t, fonts)
	})

	t.Run("rate limiter sees each fetched host", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				if url == "https://example.com/page" {
					return []byte(`<html><head><link rel="stylesheet" href="//cdn.example.net/fonts.css"></head></html>`), nil
				}
				return []byte(``), nil
			},
		}

		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		collector := &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RateLimiter: limiter,
			RetryDelays: noRetries,
		}

		_, err := collector.Collect(context.Background(), "https://example.com/page", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com", "cdn.example.net"}, domains)
	})
}
