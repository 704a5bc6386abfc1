package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// UserStoryShims covers /userstories: CRUD, bulk creation from the backlog,
// reordering within a milestone or backlog, the filters_data metadata
// endpoint, attachments, votes, and watchers (spec §6's userstories row).
func UserStoryShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_user_stories",
			Description:  "List user stories, filterable by project, milestone, or status.",
			Title:        "List user stories",
			Tags:         []string{"userstories", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories",
			QueryFields: []string{"project", "milestone", "status", "tags"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
				{Name: "milestone", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "tags", Type: registry.FieldString},
			}},
		},
		{
			Name:         "taiga_get_user_story",
			Description:  "Get a single user story by id.",
			Title:        "Get user story",
			Tags:         []string{"userstories", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_user_story_by_ref",
			Description:  "Get a user story by its project-scoped reference number.",
			Title:        "Get user story by ref",
			Tags:         []string{"userstories", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/by_ref",
			QueryFields: []string{"project", "ref"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "ref", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_user_story",
			Description:     "Create a new user story in a project's backlog.",
			Title:           "Create user story",
			Tags:            []string{"userstories", "create"},
			Method:          "POST",
			PathTemplate:    "/userstories",
			BodyFields:      []string{"project", "subject", "description", "milestone", "status", "tags"},
			WriteEntityName: "userstories",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString},
				{Name: "milestone", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "tags", Type: registry.FieldArray},
			}},
		},
		{
			Name:            "taiga_bulk_create_user_stories",
			Description:     "Create multiple user stories from a newline-separated bulk string.",
			Title:           "Bulk create user stories",
			Tags:            []string{"userstories", "create", "bulk"},
			Method:          "POST",
			PathTemplate:    "/userstories/bulk_create",
			BodyFields:      []string{"project_id", "bulk_stories"},
			WriteEntityName: "userstories",
			ProjectIDField:  "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "bulk_stories", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_user_story",
			Description:        "Update a user story's fields.",
			Title:              "Update user story",
			Tags:               []string{"userstories", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/userstories/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"subject", "description", "milestone", "status", "tags", "version"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString},
				{Name: "description", Type: registry.FieldString},
				{Name: "milestone", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "tags", Type: registry.FieldArray},
				{Name: "version", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_bulk_update_user_story_order",
			Description:        "Reorder multiple user stories within the backlog or a milestone.",
			Title:              "Bulk update user story order",
			Tags:               []string{"userstories", "update", "bulk"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/userstories/bulk_update_backlog_order",
			BodyFields:         []string{"project_id", "bulk_stories"},
			WriteEntityName:    "userstories",
			ProjectIDField:     "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "bulk_stories", Type: registry.FieldArray, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_user_story",
			Description:        "Permanently delete a user story.",
			Title:              "Delete user story",
			Tags:               []string{"userstories", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/userstories/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_user_story_filters",
			Description:  "Get the available filter options (statuses, assigned users, tags, owners) for a project's user story backlog.",
			Title:        "Get user story filters",
			Tags:         []string{"userstories", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/filters_data",
			QueryFields:  []string{"project"},
			EndpointName: "/userstories/filters_data",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_user_story_attachments",
			Description:  "List the file attachments on a user story.",
			Title:        "List user story attachments",
			Tags:         []string{"userstories", "attachments", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/attachments",
			QueryFields: []string{"project", "object_id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "object_id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_user_story_attachment",
			Description:     "Attach a file to a user story.",
			Title:           "Create user story attachment",
			Tags:            []string{"userstories", "attachments", "create"},
			Method:          "POST",
			PathTemplate:    "/userstories/attachments",
			BodyFields:      []string{"project", "object_id", "attached_file", "description"},
			WriteEntityName: "userstories",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "object_id", Type: registry.FieldInteger, Required: true},
				{Name: "attached_file", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString},
			}},
		},
		{
			Name:               "taiga_delete_user_story_attachment",
			Description:        "Remove a file attachment from a user story.",
			Title:              "Delete user story attachment",
			Tags:               []string{"userstories", "attachments", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/userstories/attachments/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_vote_user_story",
			Description:        "Add the current user's vote to a user story.",
			Title:              "Vote user story",
			Tags:               []string{"userstories", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/userstories/{id}/vote",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_unvote_user_story",
			Description:        "Remove the current user's vote from a user story.",
			Title:              "Unvote user story",
			Tags:               []string{"userstories", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/userstories/{id}/unvote",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_user_story_voters",
			Description:  "List the users who voted for a user story.",
			Title:        "List user story voters",
			Tags:         []string{"userstories", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/{id}/voters",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_watch_user_story",
			Description:        "Start watching a user story for notifications.",
			Title:              "Watch user story",
			Tags:               []string{"userstories", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/userstories/{id}/watch",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_unwatch_user_story",
			Description:        "Stop watching a user story for notifications.",
			Title:              "Unwatch user story",
			Tags:               []string{"userstories", "action"},
			IdempotentHint:     true,
			Method:             "POST",
			PathTemplate:       "/userstories/{id}/unwatch",
			PathFields:         []string{"id"},
			WriteEntityName:    "userstories",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_user_story_watchers",
			Description:  "List the users watching a user story.",
			Title:        "List user story watchers",
			Tags:         []string{"userstories", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/userstories/{id}/watchers",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
