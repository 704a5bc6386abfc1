package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// TimelineShims covers the read-only activity feeds at /timeline/user/{id}
// and /timeline/project/{id} (spec §6's "timeline" row).
func TimelineShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_get_user_timeline",
			Description:  "Get the activity timeline for a user.",
			Title:        "Get user timeline",
			Tags:         []string{"timeline", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/timeline/user/{id}",
			PathFields:  []string{"id"},
			QueryFields: []string{"page", "page_size"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "page", Type: registry.FieldInteger},
				{Name: "page_size", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_project_timeline",
			Description:  "Get the activity timeline for a project.",
			Title:        "Get project timeline",
			Tags:         []string{"timeline", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/timeline/project/{id}",
			PathFields:  []string{"id"},
			QueryFields: []string{"page", "page_size"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "page", Type: registry.FieldInteger},
				{Name: "page_size", Type: registry.FieldInteger},
			}},
		},
	}
}
