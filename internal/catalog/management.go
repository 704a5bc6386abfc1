package catalog

import (
	"context"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/cache"
	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
)

// ManagementTools builds the three tools that operate on local server state
// rather than on a Taiga REST endpoint, so they fall outside the generic
// Shim/Build dispatch model (spec §9's table covers upstream calls only).
func ManagementTools(client *cache.CachedClient, session *auth.Session) []registry.Tool {
	return []registry.Tool{
		{
			Name:          "taiga_cache_stats",
			Description:   "Report cache hit rate, size, and eviction counters for the running server.",
			Title:         "Cache statistics",
			Tags:          []string{"management", "cache"},
			ReadOnlyHint:  true,
			IdempotentHint: true,
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				stats := client.Stats()
				return map[string]any{
					"hits":      stats.Hits,
					"misses":    stats.Misses,
					"evictions": stats.Evictions,
					"size":      stats.Size,
					"hit_rate":  stats.HitRate,
				}, nil
			},
		},
		{
			Name:            "taiga_cache_clear",
			Description:     "Clear the cache, either entirely or scoped to one project.",
			Title:           "Clear cache",
			Tags:            []string{"management", "cache"},
			DestructiveHint: true,
			IdempotentHint:  true,
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger},
			}},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				if v, ok := args["project_id"]; ok {
					id, _ := toInt(v)
					cleared := client.ClearProject(id)
					return map[string]any{"cleared": cleared, "scope": "project", "project_id": id}, nil
				}
				cleared := client.ClearAll()
				return map[string]any{"cleared": cleared, "scope": "all"}, nil
			},
		},
		{
			Name:          "taiga_auth_status",
			Description:   "Report whether the server currently holds a valid Taiga session token and when it expires.",
			Title:         "Auth status",
			Tags:          []string{"management", "auth"},
			ReadOnlyHint:  true,
			IdempotentHint: true,
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				st := session.Status()
				out := map[string]any{"authenticated": st.Authenticated}
				if st.ExpiresAt != nil {
					out["expires_at"] = st.ExpiresAt.Format("2006-01-02T15:04:05Z07:00")
				}
				return out, nil
			},
		},
	}
}
