package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// UserShims covers /users and /users/me.
func UserShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_get_me",
			Description:  "Get the profile of the currently authenticated Taiga user.",
			Title:        "Get my profile",
			Tags:         []string{"users", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/users/me",
			EndpointName: "/users/me",
		},
		{
			Name:         "taiga_list_users",
			Description:  "List Taiga users, optionally filtered by project membership.",
			Title:        "List users",
			Tags:         []string{"users", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/users",
			QueryFields: []string{"project"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
			}},
		},
		{
			Name:         "taiga_get_user",
			Description:  "Get a single Taiga user by id.",
			Title:        "Get user",
			Tags:         []string{"users", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/users/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_update_user",
			Description:     "Update the current user's profile fields.",
			Title:           "Update my profile",
			Tags:            []string{"users", "update"},
			IdempotentHint:  true,
			Method:          "PATCH",
			PathTemplate:    "/users/{id}",
			PathFields:      []string{"id"},
			BodyFields:      []string{"full_name", "bio", "lang", "theme"},
			WriteEntityName: "users",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "full_name", Type: registry.FieldString},
				{Name: "bio", Type: registry.FieldString},
				{Name: "lang", Type: registry.FieldString},
				{Name: "theme", Type: registry.FieldString},
			}},
		},
		{
			Name:            "taiga_delete_user",
			Description:     "Cancel/delete a Taiga user account.",
			Title:           "Delete user",
			Tags:            []string{"users", "delete"},
			DestructiveHint: true,
			Method:          "DELETE",
			PathTemplate:    "/users/{id}",
			PathFields:      []string{"id"},
			WriteEntityName: "users",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
