package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// SearchShims covers the cross-entity /search endpoint.
func SearchShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_search",
			Description:  "Search a project's epics, user stories, tasks, issues, and wiki pages for a text query.",
			Title:        "Search project",
			Tags:         []string{"search", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/search",
			QueryFields: []string{"project", "text"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "text", Type: registry.FieldString, Required: true},
			}},
		},
	}
}
