package mcpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/config"
	"github.com/taiga-mcp/taiga-mcp-server/internal/mcpserver"
)

// testConfig points at a fake Taiga upstream and uses a static auth token so
// New never has to perform a real password login.
func testConfig(t *testing.T, upstream string) *config.Config {
	t.Helper()
	return &config.Config{
		TaigaAPIURL:      upstream,
		TaigaAuthToken:   "static-token",
		TaigaTimeout:     5 * time.Second,
		TaigaMaxRetries:  3,
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		CacheMaxSize:     100,
		RateLimitRPS:     50,
		RateLimitBurst:   10,
		Transport:        config.TransportStdio,
		RefreshThreshold: 5 * time.Minute,
	}
}

func fakeTaiga(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "demo"})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_PopulatesAllRegistries(t *testing.T) {
	t.Parallel()

	srv := fakeTaiga(t)
	cfg := testConfig(t, srv.URL)

	c, err := mcpserver.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = c.Shutdown(ctx)
	})

	// Catalog tools plus the three management tools.
	if got := c.Tools.Len(); got < 4 {
		t.Errorf("Tools.Len() = %d, want at least 4", got)
	}
	if got := c.Resources.Len(); got != 3 {
		t.Errorf("Resources.Len() = %d, want 3", got)
	}
	if got := c.Prompts.Len(); got != 3 {
		t.Errorf("Prompts.Len() = %d, want 3", got)
	}
	if c.Chain == nil {
		t.Error("Chain is nil")
	}
	if c.Health == nil {
		t.Error("Health is nil")
	}
}

func TestContainer_Shutdown_IdempotentAndClosesPool(t *testing.T) {
	t.Parallel()

	srv := fakeTaiga(t)
	cfg := testConfig(t, srv.URL)

	c, err := mcpserver.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Shutdown(ctx); err != nil {
		t.Fatalf("first Shutdown() error: %v", err)
	}
	if err := c.Shutdown(ctx); err != nil {
		t.Fatalf("second Shutdown() should be a no-op, got: %v", err)
	}
}

func TestContainer_Health_ReportsAuthenticated(t *testing.T) {
	t.Parallel()

	srv := fakeTaiga(t)
	cfg := testConfig(t, srv.URL)

	c, err := mcpserver.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = c.Shutdown(ctx)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	c.Health.Readyz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Readyz status = %d, want %d, body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
}
