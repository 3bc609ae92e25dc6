package download

import (
	"context"
	"math/rand/v2"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle spaces chapter fetches against the source site: a per-domain
// token bucket plus a small random delay before each request. The delay is
// a politeness measure, not a correctness mechanism.
type Throttle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	jitter   time.Duration
}

// NewThrottle creates a Throttle allowing rps requests per second per
// domain, with a random pre-request delay drawn from [0, jitter).
// Each domain gets its own limiter with a burst of 1.
func NewThrottle(rps float64, jitter time.Duration) *Throttle {
	return &Throttle{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		jitter:   jitter,
	}
}

// Wait blocks for the jitter delay and until the domain's rate limit allows
// another request. Returns an error only if the context is canceled.
func (t *Throttle) Wait(ctx context.Context, rawURL string) error {
	if t.jitter > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(rand.N(t.jitter)):
		}
	}

	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Host
	}

	t.mu.Lock()
	limiter, ok := t.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(t.rps), 1)
		t.limiters[domain] = limiter
	}
	t.mu.Unlock()

	return limiter.Wait(ctx)
}
