package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// TaskShims covers /tasks.
func TaskShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_tasks",
			Description:  "List tasks, filterable by project, milestone, or user story.",
			Title:        "List tasks",
			Tags:         []string{"tasks", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/tasks",
			QueryFields: []string{"project", "milestone", "user_story", "status"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
				{Name: "milestone", Type: registry.FieldInteger},
				{Name: "user_story", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_task",
			Description:  "Get a single task by id.",
			Title:        "Get task",
			Tags:         []string{"tasks", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/tasks/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_task_by_ref",
			Description:  "Get a task by its project-scoped reference number.",
			Title:        "Get task by ref",
			Tags:         []string{"tasks", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/tasks/by_ref",
			QueryFields: []string{"project", "ref"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "ref", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_task",
			Description:     "Create a new task, optionally under a user story.",
			Title:           "Create task",
			Tags:            []string{"tasks", "create"},
			Method:          "POST",
			PathTemplate:    "/tasks",
			BodyFields:      []string{"project", "subject", "description", "user_story", "milestone", "status"},
			WriteEntityName: "tasks",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString},
				{Name: "user_story", Type: registry.FieldInteger},
				{Name: "milestone", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
			}},
		},
		{
			Name:            "taiga_bulk_create_tasks",
			Description:     "Create multiple tasks under a user story from a newline-separated bulk string.",
			Title:           "Bulk create tasks",
			Tags:            []string{"tasks", "create", "bulk"},
			Method:          "POST",
			PathTemplate:    "/tasks/bulk_create",
			BodyFields:      []string{"project_id", "us_id", "bulk_tasks"},
			WriteEntityName: "tasks",
			ProjectIDField:  "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "us_id", Type: registry.FieldInteger, Required: true},
				{Name: "bulk_tasks", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_task",
			Description:        "Update a task's fields.",
			Title:              "Update task",
			Tags:               []string{"tasks", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/tasks/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"subject", "description", "status", "assigned_to", "version"},
			WriteEntityName:    "tasks",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString},
				{Name: "description", Type: registry.FieldString},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "assigned_to", Type: registry.FieldInteger},
				{Name: "version", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_task",
			Description:        "Permanently delete a task.",
			Title:              "Delete task",
			Tags:               []string{"tasks", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/tasks/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "tasks",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
