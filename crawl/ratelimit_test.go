package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/ibehnam/webpage-fonts-downloader/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1.0)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "cdn.example.net"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("second request to the same domain is delayed", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(20.0) // 50ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})
}
