package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/taiga-mcp/taiga-mcp-server/internal/middleware"
	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/ratelimit"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

func newTestMetrics(t *testing.T) *observe.Metrics {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m
}

func TestChain_OrderOutermostFirst(t *testing.T) {
	var order []string
	record := func(name string) middleware.Middleware {
		return func(next middleware.Handler) middleware.Handler {
			return func(ctx context.Context, inv *middleware.Invocation) (any, error) {
				order = append(order, name+":before")
				res, err := next(ctx, inv)
				order = append(order, name+":after")
				return res, err
			}
		}
	}
	chain := middleware.Chain(record("a"), record("b"), record("c"))
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) { return "ok", nil }

	_, err := chain(final)(context.Background(), &middleware.Invocation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a:before", "b:before", "c:before", "c:after", "b:after", "a:after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestErrorHandling_RetriesTransientForIdempotent(t *testing.T) {
	var calls atomic.Int32
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		n := calls.Add(1)
		if n < 3 {
			return nil, taigaerr.New(taigaerr.Transient, "upstream 503")
		}
		return "ok", nil
	}

	cfg := middleware.RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
	h := middleware.ErrorHandling(cfg, nil)(final)

	inv := &middleware.Invocation{Method: "GET"}
	result, err := h(context.Background(), inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Fatalf("result = %v, want ok", result)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestErrorHandling_DoesNotRetryNonIdempotentPost(t *testing.T) {
	var calls atomic.Int32
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		calls.Add(1)
		return nil, taigaerr.New(taigaerr.Transient, "upstream 503")
	}

	cfg := middleware.DefaultRetryConfig()
	h := middleware.ErrorHandling(cfg, nil)(final)

	inv := &middleware.Invocation{Method: "POST", IdempotentHint: false}
	_, err := h(context.Background(), inv)
	if taigaerr.KindOf(err) != taigaerr.Transient {
		t.Fatalf("kind = %v, want Transient", taigaerr.KindOf(err))
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", calls.Load())
	}
}

func TestErrorHandling_NeverRetriesInvalidInput(t *testing.T) {
	var calls atomic.Int32
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		calls.Add(1)
		return nil, taigaerr.New(taigaerr.InvalidInput, "bad field")
	}
	h := middleware.ErrorHandling(middleware.DefaultRetryConfig(), nil)(final)
	_, err := h(context.Background(), &middleware.Invocation{Method: "GET"})
	if taigaerr.KindOf(err) != taigaerr.InvalidInput {
		t.Fatalf("kind = %v, want InvalidInput", taigaerr.KindOf(err))
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestErrorHandling_GeneratesCorrelationID(t *testing.T) {
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) { return nil, nil }
	h := middleware.ErrorHandling(middleware.DefaultRetryConfig(), nil)(final)

	inv := &middleware.Invocation{Method: "GET"}
	_, _ = h(context.Background(), inv)
	if inv.CorrelationID == "" {
		t.Error("expected correlation id to be generated")
	}
}

func TestRateLimiting_WaitsThenProceeds(t *testing.T) {
	l := ratelimit.New(1000, 5)
	m := newTestMetrics(t)
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) { return "ok", nil }
	h := middleware.RateLimiting(l, m)(final)

	result, err := h(context.Background(), &middleware.Invocation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %v, want ok", result)
	}
}

func TestRateLimiting_FailsWhenDeadlineTooShort(t *testing.T) {
	l := ratelimit.New(1, 1)
	// Exhaust the bucket.
	_ = l.Wait(context.Background())
	m := newTestMetrics(t)

	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) { return "ok", nil }
	h := middleware.RateLimiting(l, m)(final)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err := h(ctx, &middleware.Invocation{})
	if taigaerr.KindOf(err) != taigaerr.RateLimited {
		t.Fatalf("kind = %v, want RateLimited", taigaerr.KindOf(err))
	}
}

func TestTiming_RecordsDurationAndOutcome(t *testing.T) {
	m := newTestMetrics(t)
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		time.Sleep(time.Millisecond)
		return nil, taigaerr.New(taigaerr.NotFound, "missing")
	}
	h := middleware.Timing(m)(final)
	_, err := h(context.Background(), &middleware.Invocation{Kind: middleware.KindTool, Target: "taiga_get_project"})
	if taigaerr.KindOf(err) != taigaerr.NotFound {
		t.Fatalf("kind = %v, want NotFound", taigaerr.KindOf(err))
	}
}

func TestLogging_RedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	type args struct {
		Username string
		Password string
	}
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) { return "ok", nil }
	h := middleware.Logging()(final)

	_, err := h(context.Background(), &middleware.Invocation{
		Kind:   middleware.KindTool,
		Target: "taiga_auth_login",
		Args:   args{Username: "alice", Password: "hunter2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("hunter2")) {
		t.Errorf("log output leaked secret: %s", logged)
	}
	if !bytes.Contains(buf.Bytes(), []byte("REDACTED")) {
		t.Errorf("log output missing redaction marker: %s", logged)
	}
	if !bytes.Contains(buf.Bytes(), []byte("alice")) {
		t.Errorf("log output should retain non-sensitive fields: %s", logged)
	}
}

func TestFullChain_PropagatesResultAndOutcome(t *testing.T) {
	m := newTestMetrics(t)
	l := ratelimit.New(1000, 10)

	chain := middleware.Chain(
		middleware.ErrorHandling(middleware.DefaultRetryConfig(), m),
		middleware.RateLimiting(l, m),
		middleware.Timing(m),
		middleware.Logging(),
	)

	var calls atomic.Int32
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		calls.Add(1)
		return map[string]any{"id": 7}, nil
	}

	h := chain(final)
	result, err := h(context.Background(), &middleware.Invocation{
		Kind: middleware.KindTool, Target: "taiga_get_project", Method: "GET",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, ok := result.(map[string]any)
	if !ok || m2["id"] != 7 {
		t.Errorf("result = %v, want map with id=7", result)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestFullChain_TimeoutDuringRetryWait(t *testing.T) {
	cfg := middleware.RetryConfig{MaxRetries: 5, BaseDelay: 50 * time.Millisecond, MaxDelay: time.Second}
	final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		return nil, taigaerr.New(taigaerr.Transient, "upstream down")
	}
	h := middleware.ErrorHandling(cfg, nil)(final)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := h(ctx, &middleware.Invocation{Method: "GET"})
	if err == nil {
		t.Fatal("expected an error when context is cancelled mid-retry")
	}
	if !errors.Is(err, context.DeadlineExceeded) && taigaerr.KindOf(err) != taigaerr.Timeout {
		t.Errorf("unexpected error: %v", err)
	}
}
