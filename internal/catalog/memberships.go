package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// MembershipShims covers /memberships and its bulk invitation action.
func MembershipShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_memberships",
			Description:  "List project memberships, optionally filtered by project.",
			Title:        "List memberships",
			Tags:         []string{"memberships", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/memberships",
			QueryFields:  []string{"project"},
			EndpointName: "/memberships",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_membership",
			Description:  "Get a single project membership by id.",
			Title:        "Get membership",
			Tags:         []string{"memberships", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/memberships/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_membership",
			Description:     "Invite a user to a project with a role.",
			Title:           "Create membership",
			Tags:            []string{"memberships", "create"},
			Method:          "POST",
			PathTemplate:    "/memberships",
			BodyFields:      []string{"project", "role", "username"},
			WriteEntityName: "memberships",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "role", Type: registry.FieldInteger, Required: true},
				{Name: "username", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:            "taiga_bulk_create_memberships",
			Description:     "Invite multiple users to a project in a single call.",
			Title:           "Bulk create memberships",
			Tags:            []string{"memberships", "create", "bulk"},
			Method:          "POST",
			PathTemplate:    "/memberships/bulk_create",
			BodyFields:      []string{"project_id", "bulk_memberships"},
			WriteEntityName: "memberships",
			ProjectIDField:  "project_id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project_id", Type: registry.FieldInteger, Required: true},
				{Name: "bulk_memberships", Type: registry.FieldArray, Required: true},
			}},
		},
		{
			Name:               "taiga_update_membership",
			Description:        "Update a project membership's role.",
			Title:              "Update membership",
			Tags:               []string{"memberships", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/memberships/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"role"},
			WriteEntityName:    "memberships",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "role", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_membership",
			Description:        "Remove a user from a project.",
			Title:              "Delete membership",
			Tags:               []string{"memberships", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/memberships/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "memberships",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
