// Package mcpserver wires every subsystem together into a running MCP
// server: the composition root (Container) mirrors the teacher's
// internal/app.App, and server.go maps the populated registries onto the
// modelcontextprotocol/go-sdk server.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/cache"
	"github.com/taiga-mcp/taiga-mcp-server/internal/catalog"
	"github.com/taiga-mcp/taiga-mcp-server/internal/config"
	"github.com/taiga-mcp/taiga-mcp-server/internal/health"
	"github.com/taiga-mcp/taiga-mcp-server/internal/httppool"
	"github.com/taiga-mcp/taiga-mcp-server/internal/middleware"
	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/prompts"
	"github.com/taiga-mcp/taiga-mcp-server/internal/ratelimit"
	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
	"github.com/taiga-mcp/taiga-mcp-server/internal/resilience"
	"github.com/taiga-mcp/taiga-mcp-server/internal/resources"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
)

// Container owns every subsystem's lifetime, following the teacher's
// internal/app.App composition-root pattern: New wires everything
// sequentially and Shutdown tears it down in order.
type Container struct {
	cfg *config.Config

	pool    *httppool.Pool
	session *auth.Session
	client  *taigaclient.ResilientClient
	cached  *cache.CachedClient
	metrics *observe.Metrics

	Tools     *registry.ToolRegistry
	Resources *registry.ResourceRegistry
	Prompts   *registry.PromptRegistry
	Chain     middleware.Middleware
	Health    *health.Handler

	otelShutdown func(context.Context) error
	closers      []func() error
	stopOnce     sync.Once
}

// New wires every subsystem from cfg, in dependency order, and returns a
// Container ready to drive an MCP server. On error, any subsystem already
// started is torn down before returning.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{cfg: cfg}

	// ── 1. Observability provider ────────────────────────────────────────
	if err := c.initObserve(ctx); err != nil {
		return nil, fmt.Errorf("mcpserver: init observe: %w", err)
	}

	// ── 2. Upstream Taiga client (pool, session, resilient client) ───────
	if err := c.initUpstream(); err != nil {
		c.shutdownPartial(ctx)
		return nil, fmt.Errorf("mcpserver: init upstream: %w", err)
	}

	// ── 3. Cache ──────────────────────────────────────────────────────────
	c.initCache()

	// ── 4. Registries (tools, resources, prompts) ────────────────────────
	if err := c.initRegistries(); err != nil {
		c.shutdownPartial(ctx)
		return nil, fmt.Errorf("mcpserver: init registries: %w", err)
	}

	// ── 5. Middleware chain ───────────────────────────────────────────────
	c.initMiddleware()

	// ── 6. Health checks ──────────────────────────────────────────────────
	c.initHealth()

	return c, nil
}

// initObserve stands up the OTel metrics/trace providers and the Metrics
// façade every middleware reports through.
func (c *Container) initObserve(ctx context.Context) error {
	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    "taiga-mcp-server",
		ServiceVersion: version,
	})
	if err != nil {
		return err
	}
	c.otelShutdown = shutdown
	c.metrics = observe.DefaultMetrics()
	return nil
}

// initUpstream builds the HTTP pool, the two-phase auth session/client
// bootstrap, and wraps the client in a circuit breaker.
//
// The session needs a Refresher to obtain its first token, and the
// Refresher (the Taiga client) needs a session to route authenticated
// calls through — so construction happens in two phases: a bootstrap
// client with no session performs login/refresh only (see
// taigaclient.Client.doUnauthenticated), then the real client is built
// with the session attached for everyday calls.
func (c *Container) initUpstream() error {
	poolCfg := httppool.DefaultConfig()
	c.pool = httppool.New(poolCfg)
	c.closers = append(c.closers, func() error { return c.pool.Shutdown(context.Background()) })

	bootstrap := taigaclient.New(
		c.cfg.TaigaAPIURL, c.pool, nil,
		c.cfg.TaigaUsername, c.cfg.TaigaPassword, c.cfg.TaigaAuthToken,
		taigaclient.WithTimeout(c.cfg.TaigaTimeout),
	)

	threshold := c.cfg.RefreshThreshold
	c.session = auth.New(bootstrap, threshold)

	real := taigaclient.New(
		c.cfg.TaigaAPIURL, c.pool, c.session,
		c.cfg.TaigaUsername, c.cfg.TaigaPassword, c.cfg.TaigaAuthToken,
		taigaclient.WithTimeout(c.cfg.TaigaTimeout),
	)

	c.client = taigaclient.NewResilientClient(real, resilience.CircuitBreakerConfig{
		Name:        "taiga-upstream",
		MaxFailures: max(c.cfg.TaigaMaxRetries, 1) * 2,
	})
	return nil
}

// initCache wraps the resilient client in the shared read-through cache.
func (c *Container) initCache() {
	mem := cache.New(c.cfg.CacheMaxSize, c.cfg.CacheTTL)
	c.cached = cache.NewCachedClient(c.client, mem, cache.DefaultPolicies(), c.cfg.CacheEnabled)
}

// initRegistries populates the tool, resource, and prompt registries from
// the catalog descriptors and the hand-written resources/prompts.
func (c *Container) initRegistries() error {
	c.Tools = registry.NewToolRegistry()
	if err := catalog.Build(catalog.All(), c.cached, c.Tools); err != nil {
		return fmt.Errorf("build catalog tools: %w", err)
	}
	for _, t := range catalog.ManagementTools(c.cached, c.session) {
		if err := c.Tools.Register(t); err != nil {
			return fmt.Errorf("register management tool %q: %w", t.Name, err)
		}
	}

	c.Resources = registry.NewResourceRegistry()
	for _, r := range resources.All(c.cached) {
		if err := c.Resources.Register(r); err != nil {
			return fmt.Errorf("register resource %q: %w", r.Name, err)
		}
	}

	c.Prompts = registry.NewPromptRegistry()
	for _, p := range prompts.All() {
		if err := c.Prompts.Register(p); err != nil {
			return fmt.Errorf("register prompt %q: %w", p.Name, err)
		}
	}
	return nil
}

// initMiddleware assembles the canonical four-stage chain: error handling
// (outermost, owns retries) wraps rate limiting, which wraps timing, which
// wraps structured logging (innermost, closest to the handler).
func (c *Container) initMiddleware() {
	limiter := ratelimit.New(c.cfg.RateLimitRPS, c.cfg.RateLimitBurst)
	retryCfg := middleware.DefaultRetryConfig()
	retryCfg.MaxRetries = c.cfg.TaigaMaxRetries
	c.Chain = middleware.Chain(
		middleware.ErrorHandling(retryCfg, c.metrics),
		middleware.RateLimiting(limiter, c.metrics),
		middleware.Timing(c.metrics),
		middleware.Logging(),
	)
}

// initHealth wires the generic health.Handler with Taiga-specific checks:
// upstream reachability (via the authenticated session) and circuit
// breaker state.
func (c *Container) initHealth() {
	c.Health = health.New(
		health.Checker{
			Name: "taiga_auth",
			Check: func(ctx context.Context) error {
				_, err := c.session.GetValidToken(ctx)
				return err
			},
		},
		health.Checker{
			Name: "circuit_breaker",
			Check: func(context.Context) error {
				if c.client.BreakerState() == resilience.StateOpen {
					return fmt.Errorf("circuit breaker open")
				}
				return nil
			},
		},
	)
}

// shutdownPartial best-effort tears down whatever New had already started
// when a later init step fails.
func (c *Container) shutdownPartial(ctx context.Context) {
	if err := c.Shutdown(ctx); err != nil {
		slog.Warn("partial shutdown error", "err", err)
	}
}

// Shutdown tears down every subsystem in reverse-dependency order. Safe to
// call multiple times; only the first call does work.
func (c *Container) Shutdown(ctx context.Context) error {
	var shutdownErr error
	c.stopOnce.Do(func() {
		slog.Info("mcpserver: shutting down", "closers", len(c.closers))
		for i := len(c.closers) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				slog.Warn("mcpserver: shutdown deadline exceeded", "remaining", i+1)
				shutdownErr = ctx.Err()
				return
			default:
			}
			if err := c.closers[i](); err != nil {
				slog.Warn("mcpserver: closer error", "index", i, "err", err)
			}
		}
		if c.otelShutdown != nil {
			if err := c.otelShutdown(ctx); err != nil {
				slog.Warn("mcpserver: otel shutdown error", "err", err)
			}
		}
		slog.Info("mcpserver: shutdown complete")
	})
	return shutdownErr
}

// version is the server's self-reported implementation version, surfaced in
// the MCP Implementation descriptor and the OTel resource.
const version = "0.1.0"
