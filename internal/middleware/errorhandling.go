package middleware

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// RetryConfig tunes the error-handling middleware's backoff policy for
// Transient failures.
type RetryConfig struct {
	// MaxRetries is the maximum number of additional attempts after the
	// first. Zero disables retries entirely.
	MaxRetries int

	// BaseDelay is the first retry's nominal delay before jitter.
	BaseDelay time.Duration

	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
}

// DefaultRetryConfig mirrors typical REST-client backoff tuning: a handful
// of retries with a short base delay capped well under most request
// timeouts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
	}
}

// ErrorHandling is the outermost middleware in the chain. It generates a
// correlation id when absent, classifies any error raised by inner layers
// per the taigaerr taxonomy, retries Transient and RateLimited failures
// (waiting out a RetryAfter when one is present, otherwise using exponential
// backoff and jitter) subject to the idempotent-retry-safety invariant, and
// logs the outcome.
func ErrorHandling(cfg RetryConfig, m *observe.Metrics) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (any, error) {
			if inv.CorrelationID == "" {
				if cid := observe.CorrelationID(ctx); cid != "" {
					inv.CorrelationID = cid
				} else {
					inv.CorrelationID = uuid.NewString()
				}
			}
			logger := slog.Default().With(
				slog.String("correlation_id", inv.CorrelationID),
				slog.String("kind", string(inv.Kind)),
				slog.String("target", inv.Target),
			)
			ctx = context.WithValue(ctx, correlationIDKey{}, inv.CorrelationID)

			attempts := 0
			for {
				result, err := next(ctx, inv)
				attempts++
				if err == nil {
					return result, nil
				}
				kind := taigaerr.KindOf(err)

				if !shouldRetry(kind, inv, attempts, cfg) {
					logger.Error("invocation failed",
						slog.String("error_kind", string(kind)),
						slog.Int("attempts", attempts),
						slog.String("error", err.Error()),
					)
					return nil, err
				}

				delay := retryDelay(kind, err, attempts, cfg)
				logger.Warn("retrying after transient failure",
					slog.String("error_kind", string(kind)),
					slog.Int("attempt", attempts),
					slog.Duration("delay", delay),
				)
				if m != nil {
					m.RetryAttempts.Add(ctx, 1, metric.WithAttributes(observe.Attr("target", inv.Target)))
				}

				select {
				case <-ctx.Done():
					return nil, taigaerr.Wrap(taigaerr.Timeout, ctx.Err(), "context cancelled while waiting to retry")
				case <-time.After(delay):
				}
			}
		}
	}
}

// shouldRetry decides whether another attempt is warranted for the given
// error kind, honouring the idempotent-retry-safety invariant: retries for
// Transient/RateLimited failures only happen when inv.Safe() holds.
func shouldRetry(kind taigaerr.Kind, inv *Invocation, attempts int, cfg RetryConfig) bool {
	if attempts > cfg.MaxRetries {
		return false
	}
	if !taigaerr.Retryable(kind) {
		return false
	}
	return inv.Safe()
}

// retryDelay computes the next backoff delay. RateLimited errors carrying a
// RetryAfter hint honour it directly (clamped to MaxDelay); everything else
// uses exponential backoff with full jitter.
func retryDelay(kind taigaerr.Kind, err error, attempt int, cfg RetryConfig) time.Duration {
	if kind == taigaerr.RateLimited {
		if te, ok := err.(*taigaerr.Error); ok && te.RetryAfter > 0 {
			d := time.Duration(te.RetryAfter * float64(time.Second))
			if d > cfg.MaxDelay {
				d = cfg.MaxDelay
			}
			return d
		}
	}
	base := cfg.BaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	capped := cfg.MaxDelay
	if capped <= 0 {
		capped = 5 * time.Second
	}
	exp := float64(base) * math.Pow(2, float64(attempt-1))
	if exp > float64(capped) {
		exp = float64(capped)
	}
	// Full jitter: uniform in [0, exp].
	return time.Duration(rand.Float64() * exp)
}

// correlationIDKey is the context key used to carry the invocation's
// correlation id for loggers deeper in the chain.
type correlationIDKey struct{}

// CorrelationIDFromContext returns the correlation id attached by
// [ErrorHandling], or the empty string if none is present.
func CorrelationIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return v
	}
	return ""
}
