// Package ratelimit implements the single process-wide token bucket of
// spec §3 "RateLimitBucket" / §4.2 item 2, grounded on the retrieval pack's
// vellankikoti-kubilitics-os-emergent HTTP rate-limit middleware: both
// build on golang.org/x/time/rate and derive a wait/Retry-After duration
// from Limiter.Reserve().
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Limiter wraps a single *rate.Limiter shared by every invocation, per
// spec §4.2 item 2 ("a single process-wide token bucket").
type Limiter struct {
	rl *rate.Limiter
}

// New builds a Limiter with the given requests-per-second refill rate and
// burst capacity.
func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available or ctx's deadline is reached,
// whichever comes first. If the deadline would be exceeded before a token
// arrives, it fails with [taigaerr.RateLimited] rather than blocking past
// it, per spec §4.2 item 2.
func (l *Limiter) Wait(ctx context.Context) error {
	reservation := l.rl.Reserve()
	if !reservation.OK() {
		return taigaerr.New(taigaerr.RateLimited, "rate limit burst exhausted, no reservation available")
	}

	delay := reservation.Delay()
	if delay == 0 {
		return nil
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Now().Add(delay).After(deadline) {
		reservation.Cancel()
		return taigaerr.New(taigaerr.RateLimited, "rate limit wait would exceed request deadline")
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return taigaerr.New(taigaerr.RateLimited, "rate limit wait cancelled by context")
	}
}

// Tokens reports the current number of available tokens, for diagnostics.
func (l *Limiter) Tokens() float64 {
	return l.rl.Tokens()
}
