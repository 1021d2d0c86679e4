package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"golang.org/x/sync/errgroup"
)

// Downloader retrieves font binaries concurrently and hands them to a
// FontWriter. Source selection follows the fixed format priority; download
// ordering is immaterial, results are re-sorted to input order.
type Downloader struct {
	Fetcher     webfonts.Fetcher
	Writer      webfonts.FontWriter
	RateLimiter webfonts.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// DownloadAll attempts to download every font and returns one result per
// input face, in input order. Individual failures are recorded in the
// result, never propagated as an error.
func (d *Downloader) DownloadAll(ctx context.Context, fonts []*webfonts.FontFace, progress ProgressFunc) []*webfonts.DownloadResult {
	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]*webfonts.DownloadResult, len(fonts))
	var completed atomic.Int64
	total := len(fonts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, font := range fonts {
		i, font := i, font
		g.Go(func() error {
			result := d.download(gctx, font, i)
			results[i] = result

			done := int(completed.Add(1))
			eventType := ProgressDownloadCompleted
			if !result.Success() {
				eventType = ProgressDownloadFailed
			}
			notify(progress, ProgressEvent{
				Type:      eventType,
				URL:       downloadURL(result),
				Completed: done,
				Total:     total,
				Err:       result.Err,
			})
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// download retrieves a single font using its best available source.
func (d *Downloader) download(ctx context.Context, font *webfonts.FontFace, index int) *webfonts.DownloadResult {
	src, ok := webfonts.SelectSource(font)
	if !ok {
		return &webfonts.DownloadResult{
			Font: font,
			Err:  webfonts.Errorf(webfonts.EUNRESOLVED, "font %q has no downloadable source", font.Family),
		}
	}

	if d.RateLimiter != nil {
		if u, err := url.Parse(src.URL); err == nil {
			if err := d.RateLimiter.Wait(ctx, u.Host); err != nil {
				return &webfonts.DownloadResult{Font: font, Err: err}
			}
		}
	}

	data, err := FetchWithRetryDelays(ctx, src.URL, d.Fetcher.Fetch, d.RetryDelays)
	if err != nil {
		return &webfonts.DownloadResult{
			Font: font,
			Err:  webfonts.Errorf(webfonts.EUNAVAILABLE, "fetch %s: %v", src.URL, err),
		}
	}

	path, err := d.Writer.WriteFont(ctx, font, data, index)
	if err != nil {
		return &webfonts.DownloadResult{Font: font, Err: err}
	}

	return &webfonts.DownloadResult{Font: font, Path: path}
}

func downloadURL(result *webfonts.DownloadResult) string {
	if src, ok := webfonts.SelectSource(result.Font); ok {
		return src.URL
	}
	return ""
}
