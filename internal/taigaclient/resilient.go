package taigaclient

import (
	"context"

	"github.com/taiga-mcp/taiga-mcp-server/internal/resilience"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// ResilientClient wraps a *Client with a per-host circuit breaker (spec
// SPEC_FULL.md ambient-stack: internal/resilience.CircuitBreaker, adapted
// from the teacher's same-named type). Repeated 5xx/transport bursts trip
// the breaker independently of the error-handling middleware's retry loop,
// which only ever sees individual request outcomes.
type ResilientClient struct {
	*Client
	breaker *resilience.CircuitBreaker
}

// NewResilientClient wraps client with a breaker configured per host. Unless
// cfg already supplies one, the breaker only counts Transient/Timeout
// failures against its budget — ordinary 4xx outcomes like NotFound or
// InvalidInput reflect a caller's request, not an unhealthy upstream, and
// must never trip the breaker for unrelated callers (spec's "repeated 5xx
// bursts trip a breaker", not "any error trips a breaker").
func NewResilientClient(client *Client, cfg resilience.CircuitBreakerConfig) *ResilientClient {
	if cfg.IsFailure == nil {
		cfg.IsFailure = isBreakerFailure
	}
	return &ResilientClient{Client: client, breaker: resilience.NewCircuitBreaker(cfg)}
}

// isBreakerFailure reports whether err should count toward the circuit
// breaker's failure budget.
func isBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	switch taigaerr.KindOf(err) {
	case taigaerr.Transient, taigaerr.Timeout:
		return true
	default:
		return false
	}
}

// Do overrides Client.Do to run it through the circuit breaker. An open
// breaker surfaces as a Transient failure so the middleware's retry policy
// treats it the same as any other upstream outage.
func (r *ResilientClient) Do(ctx context.Context, spec RequestSpec, out any) error {
	err := r.breaker.Execute(func() error {
		return r.Client.Do(ctx, spec, out)
	})
	if err == resilience.ErrCircuitOpen {
		return taigaerr.New(taigaerr.Transient, "circuit breaker open for upstream Taiga host")
	}
	return err
}

// BreakerState reports the circuit breaker's current state, for the
// taiga_auth_status / health-check surface.
func (r *ResilientClient) BreakerState() resilience.State {
	return r.breaker.State()
}
