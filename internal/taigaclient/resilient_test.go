package taigaclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/resilience"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
)

func newResilientTestClient(t *testing.T, handler http.HandlerFunc, cfg resilience.CircuitBreakerConfig) *taigaclient.ResilientClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := taigaclient.New(srv.URL, http.DefaultClient, nil, "", "", "static-token")
	session := auth.New(c, 5*time.Minute)
	c = taigaclient.New(srv.URL, http.DefaultClient, session, "", "", "static-token")
	return taigaclient.NewResilientClient(c, cfg)
}

func TestResilientClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	rc := newResilientTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{Name: "test", MaxFailures: 2})

	// More NotFound calls than MaxFailures would allow for a genuine outage.
	for i := 0; i < 5; i++ {
		err := rc.Do(context.Background(), taigaclient.RequestSpec{Method: "GET", Path: "/userstories/999"}, nil)
		if err == nil {
			t.Fatalf("call %d: expected a NotFound error", i)
		}
	}

	if rc.BreakerState() != resilience.StateClosed {
		t.Fatalf("breaker state = %v, want closed (NotFound must not trip the breaker)", rc.BreakerState())
	}
}

func TestResilientClient_ServerErrorsTripBreaker(t *testing.T) {
	rc := newResilientTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, resilience.CircuitBreakerConfig{Name: "test", MaxFailures: 2})

	for i := 0; i < 2; i++ {
		_ = rc.Do(context.Background(), taigaclient.RequestSpec{Method: "GET", Path: "/userstories/1"}, nil)
	}

	if rc.BreakerState() != resilience.StateOpen {
		t.Fatalf("breaker state = %v, want open after repeated 503s", rc.BreakerState())
	}
}
