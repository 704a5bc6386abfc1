// Package resources builds the three read-only MCP resources named in
// SPEC_FULL.md §2: the current user's profile, a project's stats, and a
// project's modules configuration. Each is a thin registry.Resource whose
// handler does exactly one cached-client read, mirroring the "no other
// logic" contract catalog.Shim applies to tools (spec §4.1).
package resources

import (
	"context"
	"strconv"

	"github.com/taiga-mcp/taiga-mcp-server/internal/cache"
	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// All returns the three resources bound to client, ready for registration.
func All(client *cache.CachedClient) []registry.Resource {
	return []registry.Resource{
		{
			Name:        "current_user",
			Description: "The profile of the currently authenticated Taiga user.",
			URITemplate: "taiga://users/me",
			MIMEType:    "application/json",
			Handler: func(ctx context.Context, vars map[string]string) (any, error) {
				var out map[string]any
				err := client.Read(ctx, "/users/me", taigaclient.RequestSpec{Method: "GET", Path: "/users/me"}, &out)
				return out, err
			},
		},
		{
			Name:        "project_stats",
			Description: "Aggregate points, progress, and velocity stats for a project.",
			URITemplate: "taiga://projects/{project_id}/stats",
			MIMEType:    "application/json",
			Handler: func(ctx context.Context, vars map[string]string) (any, error) {
				id, err := projectID(vars)
				if err != nil {
					return nil, err
				}
				path := "/projects/" + strconv.Itoa(id) + "/stats"
				var out map[string]any
				err = client.Read(ctx, "/projects/{id}/stats", taigaclient.RequestSpec{Method: "GET", Path: path}, &out)
				return out, err
			},
		},
		{
			Name:        "project_config",
			Description: "Enabled modules and integration configuration for a project.",
			URITemplate: "taiga://projects/{project_id}/config",
			MIMEType:    "application/json",
			Handler: func(ctx context.Context, vars map[string]string) (any, error) {
				id, err := projectID(vars)
				if err != nil {
					return nil, err
				}
				path := "/projects/" + strconv.Itoa(id) + "/modules"
				var out map[string]any
				err = client.Read(ctx, "/projects/{id}/modules", taigaclient.RequestSpec{Method: "GET", Path: path}, &out)
				return out, err
			},
		},
	}
}

func projectID(vars map[string]string) (int, error) {
	raw, ok := vars["project_id"]
	if !ok {
		return 0, taigaerr.New(taigaerr.InvalidInput, "missing project_id in resource URI")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, taigaerr.Wrap(taigaerr.InvalidInput, err, "project_id must be an integer")
	}
	return id, nil
}
