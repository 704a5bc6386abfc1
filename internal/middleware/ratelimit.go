package middleware

import (
	"context"

	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/ratelimit"
)

// RateLimiting is the second link in the chain: a single process-wide token
// bucket gates every invocation regardless of its readOnlyHint. The wait is
// bounded by the invocation's own context deadline — see
// [ratelimit.Limiter.Wait].
func RateLimiting(l *ratelimit.Limiter, m *observe.Metrics) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (any, error) {
			before := l.Tokens()
			if err := l.Wait(ctx); err != nil {
				if m != nil {
					m.RateLimitRejections.Add(ctx, 1)
				}
				return nil, err
			}
			if m != nil && before < 1 {
				m.RateLimitWaits.Add(ctx, 1)
			}
			return next(ctx, inv)
		}
	}
}
