package mock

import (
	"context"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
)

var _ webfonts.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webfonts.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
