package middleware

import (
	"context"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Timing records start and end time around the inner handler and reports
// the elapsed duration to the invocation-duration histogram and counter. It
// never throws — a panic or error from next is passed through unchanged,
// only classified for the outcome attribute.
func Timing(m *observe.Metrics) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (any, error) {
			start := time.Now()
			result, err := next(ctx, inv)
			duration := time.Since(start)

			if m != nil {
				outcome := "ok"
				if err != nil {
					outcome = string(taigaerr.KindOf(err))
				}
				m.RecordInvocation(ctx, string(inv.Kind), inv.Target, outcome, duration.Seconds())
			}
			return result, err
		}
	}
}
