package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// EpicShims covers /epics, including linking/unlinking related user stories.
func EpicShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_epics",
			Description:  "List epics, filterable by project or status.",
			Title:        "List epics",
			Tags:         []string{"epics", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/epics",
			QueryFields: []string{"project", "status"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
				{Name: "status", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_epic",
			Description:  "Get a single epic by id.",
			Title:        "Get epic",
			Tags:         []string{"epics", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/epics/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_epic_by_ref",
			Description:  "Get an epic by its project-scoped reference number.",
			Title:        "Get epic by ref",
			Tags:         []string{"epics", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/epics/by_ref",
			QueryFields: []string{"project", "ref"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "ref", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_epic",
			Description:     "Create a new epic in a project.",
			Title:           "Create epic",
			Tags:            []string{"epics", "create"},
			Method:          "POST",
			PathTemplate:    "/epics",
			BodyFields:      []string{"project", "subject", "description", "color", "tags"},
			WriteEntityName: "epics",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString, Required: true},
				{Name: "description", Type: registry.FieldString},
				{Name: "color", Type: registry.FieldString},
				{Name: "tags", Type: registry.FieldArray},
			}},
		},
		{
			Name:               "taiga_update_epic",
			Description:        "Update an epic's fields.",
			Title:              "Update epic",
			Tags:               []string{"epics", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/epics/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"subject", "description", "status", "color", "tags", "version"},
			WriteEntityName:    "epics",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "subject", Type: registry.FieldString},
				{Name: "description", Type: registry.FieldString},
				{Name: "status", Type: registry.FieldInteger},
				{Name: "color", Type: registry.FieldString},
				{Name: "tags", Type: registry.FieldArray},
				{Name: "version", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_epic",
			Description:        "Permanently delete an epic.",
			Title:              "Delete epic",
			Tags:               []string{"epics", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/epics/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "epics",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_link_epic_user_story",
			Description:        "Attach an existing user story to an epic.",
			Title:              "Link epic to user story",
			Tags:               []string{"epics", "action"},
			Method:             "POST",
			PathTemplate:       "/epics/{epic_id}/related_userstories",
			PathFields:         []string{"epic_id"},
			BodyFields:         []string{"user_story"},
			WriteEntityName:    "epics",
			WriteEntityIDField: "epic_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "epic_id", Type: registry.FieldInteger, Required: true},
				{Name: "user_story", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_unlink_epic_user_story",
			Description:        "Detach a user story from an epic.",
			Title:              "Unlink epic from user story",
			Tags:               []string{"epics", "action"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/epics/{epic_id}/related_userstories/{user_story_id}",
			PathFields:         []string{"epic_id", "user_story_id"},
			WriteEntityName:    "epics",
			WriteEntityIDField: "epic_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "epic_id", Type: registry.FieldInteger, Required: true},
				{Name: "user_story_id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
