package download_test

import (
	"context"
	"testing"
	"time"

	"github.com/Clickman777/TgBot/download"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces successive requests to the same domain", func(t *testing.T) {
		t.Parallel()

		throttle := download.NewThrottle(50, 0)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, throttle.Wait(ctx, "https://example.com/a"))
		require.NoError(t, throttle.Wait(ctx, "https://example.com/b"))
		require.NoError(t, throttle.Wait(ctx, "https://example.com/c"))

		// 50 rps means at least ~40ms for two waits after the initial token.
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("domains do not share a limiter", func(t *testing.T) {
		t.Parallel()

		throttle := download.NewThrottle(1, 0)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, throttle.Wait(ctx, "https://one.example.com/a"))
		require.NoError(t, throttle.Wait(ctx, "https://two.example.com/a"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		throttle := download.NewThrottle(1, 0)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, throttle.Wait(ctx, "https://example.com/a"))
		cancel()
		require.Error(t, throttle.Wait(ctx, "https://example.com/b"))
	})
}
