// Command taiga-mcp is the entry point for the Taiga MCP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/config"
	"github.com/taiga-mcp/taiga-mcp-server/internal/mcpserver"
)

func main() {
	os.Exit(run())
}

func run() int {
	// ── Load configuration ───────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "taiga-mcp: %v\n", err)
		return 1
	}

	// ── Logger ────────────────────────────────────────────────────────────
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	slog.Info("taiga-mcp starting",
		"upstream", cfg.TaigaAPIURL,
		"transport", cfg.Transport,
		"cache_enabled", cfg.CacheEnabled,
		"env", cfg.Env,
	)

	// ── Composition root ──────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := mcpserver.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialise server", "err", err)
		return 2
	}

	srv := mcpserver.NewServer(container)

	slog.Info("server ready", "transport", cfg.Transport)

	if err := srv.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	slog.Info("shutdown signal received, stopping…")
	if err := container.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

// newLogger builds a structured logger whose verbosity follows cfg.Debug and
// whose output is masked when cfg.Env is production (cfg.Masked()).
func newLogger(cfg *config.Config) *slog.Logger {
	lvl := slog.LevelInfo
	if cfg.Debug {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Masked() {
		opts.ReplaceAttr = redactSecrets(cfg.Secrets())
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// redactSecrets returns a slog.HandlerOptions.ReplaceAttr that blanks out
// any attribute value equal to one of cfg's configured secrets, so a stray
// log call can't leak the Taiga password or auth token in production.
func redactSecrets(secrets []string) func([]string, slog.Attr) slog.Attr {
	blocked := make(map[string]struct{}, len(secrets))
	for _, s := range secrets {
		if s != "" {
			blocked[s] = struct{}{}
		}
	}
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Value.Kind() == slog.KindString {
			if _, found := blocked[a.Value.String()]; found {
				a.Value = slog.StringValue("[redacted]")
			}
		}
		return a
	}
}
