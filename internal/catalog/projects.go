package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// ProjectShims covers /projects and its stats/modules/tags/like/watch
// sub-resources.
func ProjectShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_projects",
			Description:  "List Taiga projects visible to the current user.",
			Title:        "List projects",
			Tags:         []string{"projects", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects",
			QueryFields:  []string{"member", "slug", "is_backlog_activated"},
			EndpointName: "/projects",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "member", Type: registry.FieldInteger},
				{Name: "slug", Type: registry.FieldString},
				{Name: "is_backlog_activated", Type: registry.FieldBoolean},
			}},
		},
		{
			Name:         "taiga_get_project",
			Description:  "Get a single Taiga project by id.",
			Title:        "Get project",
			Tags:         []string{"projects", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects/{id}",
			PathFields:   []string{"id"},
			EndpointName: "/projects/{id}",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_project_by_slug",
			Description:  "Get a single Taiga project by its slug.",
			Title:        "Get project by slug",
			Tags:         []string{"projects", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects/by_slug",
			QueryFields: []string{"slug"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "slug", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:         "taiga_get_project_stats",
			Description:  "Get aggregate stats (points, progress, velocity) for a project.",
			Title:        "Get project stats",
			Tags:         []string{"projects", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects/{id}/stats",
			PathFields:   []string{"id"},
			EndpointName: "/projects/{id}/stats",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_project_modules",
			Description:  "Get the enabled modules/integrations configuration for a project.",
			Title:        "Get project modules",
			Tags:         []string{"projects", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects/{id}/modules",
			PathFields:   []string{"id"},
			EndpointName: "/projects/{id}/modules",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_project",
			Description:     "Create a new Taiga project.",
			Title:           "Create project",
			Tags:            []string{"projects", "create"},
			Method:          "POST",
			PathTemplate:    "/projects",
			BodyFields:      []string{"name", "description", "is_private", "is_backlog_activated", "is_kanban_activated", "is_issues_activated"},
			WriteEntityName: "projects",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "name", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString, Required: true},
				{Name: "is_private", Type: registry.FieldBoolean},
				{Name: "is_backlog_activated", Type: registry.FieldBoolean},
				{Name: "is_kanban_activated", Type: registry.FieldBoolean},
				{Name: "is_issues_activated", Type: registry.FieldBoolean},
			}},
		},
		{
			Name:               "taiga_update_project",
			Description:        "Update a Taiga project's fields.",
			Title:              "Update project",
			Tags:               []string{"projects", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/projects/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"name", "description", "is_private"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "name", Type: registry.FieldString},
				{Name: "description", Type: registry.FieldString},
				{Name: "is_private", Type: registry.FieldBoolean},
			}},
		},
		{
			Name:               "taiga_delete_project",
			Description:        "Permanently delete a Taiga project.",
			Title:              "Delete project",
			Tags:               []string{"projects", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/projects/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_like_project",
			Description:        "Mark a project as liked by the current user.",
			Title:              "Like project",
			Tags:               []string{"projects", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/projects/{id}/like",
			PathFields:         []string{"id"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_unlike_project",
			Description:        "Remove the current user's like from a project.",
			Title:              "Unlike project",
			Tags:               []string{"projects", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/projects/{id}/unlike",
			PathFields:         []string{"id"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_watch_project",
			Description:        "Start watching a project for notifications.",
			Title:              "Watch project",
			Tags:               []string{"projects", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/projects/{id}/watch",
			PathFields:         []string{"id"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_unwatch_project",
			Description:        "Stop watching a project for notifications.",
			Title:              "Unwatch project",
			Tags:               []string{"projects", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/projects/{id}/unwatch",
			PathFields:         []string{"id"},
			WriteEntityName:    "projects",
			WriteEntityIDField: "id",
			ProjectIDField:     "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_project_tags",
			Description:  "List the tags defined on a project, with colors.",
			Title:        "List project tags",
			Tags:         []string{"projects", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/projects/{id}/tags_colors",
			PathFields:   []string{"id"},
			EndpointName: "/projects/{id}/tags_colors",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_create_project_tag",
			Description:        "Add a new tag (with color) to a project.",
			Title:              "Create project tag",
			Tags:               []string{"projects", "create"},
			Method:              "POST",
			PathTemplate:        "/projects/{project_id}/tags",
			PathFields:          []string{"project_id"},
			BodyFields:          []string{"tag", "color"},
			WriteEntityName:     "projects",
			ProjectIDField:      "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "tag", Type: registry.FieldString, Required: true},
				{Name: "color", Type: registry.FieldString},
			}},
		},
	}
}
