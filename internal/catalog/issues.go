package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// IssueShims covers /issues, including bulk creation, voting, and watching.
func IssueShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_issues",
			Description:  "List issues, filterable by project, status, priority, or type.",
			Title:        "List issues",
			Tags:         []string{"issues", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/issues",
			QueryFields: []string{"project", "status", "priority", "type", "severity"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "priority", Type: registry.FieldInteger},
				{Name: "type", Type: registry.FieldInteger},
				{Name: "severity", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_issue",
			Description:  "Get a single issue by id.",
			Title:        "Get issue",
			Tags:         []string{"issues", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/issues/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_issue_by_ref",
			Description:  "Get an issue by its project-scoped reference number.",
			Title:        "Get issue by ref",
			Tags:         []string{"issues", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/issues/by_ref",
			QueryFields: []string{"project", "ref"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "ref", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_issue",
			Description:     "Create a new issue in a project.",
			Title:           "Create issue",
			Tags:            []string{"issues", "create"},
			Method:          "POST",
			PathTemplate:    "/issues",
			BodyFields:      []string{"project", "subject", "description", "priority", "severity", "type", "tags"},
			WriteEntityName: "issues",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString},
				{Name: "priority", Type: registry.FieldInteger},
				{Name: "severity", Type: registry.FieldInteger},
				{Name: "type", Type: registry.FieldInteger},
				{Name: "tags", Type: registry.FieldArray},
			}},
		},
		{
			Name:            "taiga_bulk_create_issues",
			Description:     "Create multiple issues from a newline-separated bulk string.",
			Title:           "Bulk create issues",
			Tags:            []string{"issues", "create", "bulk"},
			Method:          "POST",
			PathTemplate:    "/issues/bulk_create",
			BodyFields:      []string{"project_id", "bulk_issues"},
			WriteEntityName: "issues",
			ProjectIDField:  "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "bulk_issues", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_issue",
			Description:        "Update an issue's fields.",
			Title:              "Update issue",
			Tags:               []string{"issues", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/issues/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"subject", "description", "status", "priority", "severity", "assigned_to", "version"},
			WriteEntityName:    "issues",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString},
				{Name: "description", Type: registry.FieldString},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "priority", Type: registry.FieldInteger},
				{Name: "severity", Type: registry.FieldInteger},
				{Name: "assigned_to", Type: registry.FieldInteger},
				{Name: "version", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_issue",
			Description:        "Permanently delete an issue.",
			Title:              "Delete issue",
			Tags:               []string{"issues", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/issues/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "issues",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_upvote_issue",
			Description:        "Add the current user's upvote to an issue.",
			Title:              "Upvote issue",
			Tags:               []string{"issues", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/issues/{id}/upvote",
			PathFields:         []string{"id"},
			WriteEntityName:    "issues",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_downvote_issue",
			Description:        "Remove the current user's upvote from an issue.",
			Title:              "Downvote issue",
			Tags:               []string{"issues", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/issues/{id}/downvote",
			PathFields:         []string{"id"},
			WriteEntityName:    "issues",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_watch_issue",
			Description:        "Start watching an issue for notifications.",
			Title:              "Watch issue",
			Tags:               []string{"issues", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/issues/{id}/watch",
			PathFields:         []string{"id"},
			WriteEntityName:    "issues",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
