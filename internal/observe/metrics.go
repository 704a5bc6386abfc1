// Package observe provides application-wide observability primitives:
// OpenTelemetry metrics, distributed tracing, structured logging, and HTTP
// middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. [InitProvider]
// installs a Prometheus exporter bridge that registers them with the
// Prometheus default registry; no /metrics endpoint serves that registry in
// this server. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all metrics.
const meterName = "github.com/taiga-mcp/taiga-mcp-server"

// Metrics holds all OpenTelemetry metric instruments for the server. All
// fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Invocation latency ---

	// InvocationDuration tracks MCP tool/resource/prompt handling latency,
	// recorded by the timing middleware (spec §4.2 item 3).
	InvocationDuration metric.Float64Histogram

	// HTTPRequestDuration tracks HTTP request processing time, when the
	// server runs under the streamable-HTTP transport.
	HTTPRequestDuration metric.Float64Histogram

	// --- Invocation counters ---

	// Invocations counts tool/resource/prompt invocations. Attributes:
	// kind, target, outcome.
	Invocations metric.Int64Counter

	// RetryAttempts counts retry attempts performed by the error-handling
	// middleware.
	RetryAttempts metric.Int64Counter

	// RateLimitWaits counts how often an invocation had to wait for the
	// token bucket to refill.
	RateLimitWaits metric.Int64Counter

	// RateLimitRejections counts invocations that failed with RateLimited
	// because the deadline would have been exceeded.
	RateLimitRejections metric.Int64Counter

	// --- Cache counters ---

	CacheHits      metric.Int64Counter
	CacheMisses    metric.Int64Counter
	CacheEvictions metric.Int64Counter

	// --- HTTP session pool gauges ---

	PoolInFlight metric.Int64UpDownCounter
	PoolCreated  metric.Int64Counter
	PoolClosed   metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) suited to
// REST-proxy request latencies.
var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.InvocationDuration, err = m.Float64Histogram("taiga_mcp.invocation.duration",
		metric.WithDescription("Latency of MCP tool/resource/prompt invocations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("taiga_mcp.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.Invocations, err = m.Int64Counter("taiga_mcp.invocations",
		metric.WithDescription("Total invocations by kind, target, and outcome."),
	); err != nil {
		return nil, err
	}
	if met.RetryAttempts, err = m.Int64Counter("taiga_mcp.retry_attempts",
		metric.WithDescription("Total retry attempts performed by the error-handling middleware."),
	); err != nil {
		return nil, err
	}
	if met.RateLimitWaits, err = m.Int64Counter("taiga_mcp.rate_limit.waits",
		metric.WithDescription("Total invocations that waited for the rate-limit bucket to refill."),
	); err != nil {
		return nil, err
	}
	if met.RateLimitRejections, err = m.Int64Counter("taiga_mcp.rate_limit.rejections",
		metric.WithDescription("Total invocations rejected with RateLimited."),
	); err != nil {
		return nil, err
	}

	if met.CacheHits, err = m.Int64Counter("taiga_mcp.cache.hits",
		metric.WithDescription("Total memory cache hits."),
	); err != nil {
		return nil, err
	}
	if met.CacheMisses, err = m.Int64Counter("taiga_mcp.cache.misses",
		metric.WithDescription("Total memory cache misses."),
	); err != nil {
		return nil, err
	}
	if met.CacheEvictions, err = m.Int64Counter("taiga_mcp.cache.evictions",
		metric.WithDescription("Total memory cache evictions (TTL, LRU, or invalidate)."),
	); err != nil {
		return nil, err
	}

	if met.PoolInFlight, err = m.Int64UpDownCounter("taiga_mcp.pool.in_flight",
		metric.WithDescription("Number of in-flight upstream HTTP requests."),
	); err != nil {
		return nil, err
	}
	if met.PoolCreated, err = m.Int64Counter("taiga_mcp.pool.created_total",
		metric.WithDescription("Total upstream HTTP requests issued."),
	); err != nil {
		return nil, err
	}
	if met.PoolClosed, err = m.Int64Counter("taiga_mcp.pool.closed_total",
		metric.WithDescription("Total upstream HTTP connections closed."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it
// on first call using [otel.GetMeterProvider]. Subsequent calls return the
// same pointer. Panics if instrument creation fails (should not happen with
// the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordInvocation is a convenience method recording one invocation's
// duration and outcome counter together.
func (m *Metrics) RecordInvocation(ctx context.Context, kind, target, outcome string, durationSeconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("target", target),
		attribute.String("outcome", outcome),
	)
	m.Invocations.Add(ctx, 1, attrs)
	m.InvocationDuration.Record(ctx, durationSeconds, attrs)
}

// RecordCacheHit increments the cache hit counter.
func (m *Metrics) RecordCacheHit(ctx context.Context) { m.CacheHits.Add(ctx, 1) }

// RecordCacheMiss increments the cache miss counter.
func (m *Metrics) RecordCacheMiss(ctx context.Context) { m.CacheMisses.Add(ctx, 1) }

// RecordCacheEviction increments the cache eviction counter.
func (m *Metrics) RecordCacheEviction(ctx context.Context) { m.CacheEvictions.Add(ctx, 1) }
