package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// CustomAttributeShims covers the four per-entity custom attribute
// definition families (/{us,task,issue,epic}-custom-attributes) plus the
// per-object custom-attributes-values sub-resource each entity exposes
// (spec §6's "custom attrs" row).
func CustomAttributeShims() []Shim {
	families := []struct {
		slug       string // definition endpoint segment, e.g. "userstory-custom-attributes"
		entityPath string // owning entity's plural path, e.g. "userstories"
		noun       string // human-readable singular, e.g. "user story custom attribute"
		toolSlug   string // tool-name segment, e.g. "user_story_custom_attribute"
	}{
		{"userstory-custom-attributes", "userstories", "user story custom attribute", "user_story_custom_attribute"},
		{"task-custom-attributes", "tasks", "task custom attribute", "task_custom_attribute"},
		{"issue-custom-attributes", "issues", "issue custom attribute", "issue_custom_attribute"},
		{"epic-custom-attributes", "epics", "epic custom attribute", "epic_custom_attribute"},
	}

	var out []Shim
	for _, f := range families {
		out = append(out,
			Shim{
				Name:         "taiga_list_" + f.toolSlug + "s",
				Description:  "List the " + f.noun + " definitions configured for a project.",
				Title:        "List " + f.noun + " definitions",
				Tags:         []string{"custom-attributes", f.entityPath, "list"},
				ReadOnlyHint: true, IdempotentHint: true,
				Method: "GET", PathTemplate: "/" + f.slug,
				QueryFields: []string{"project"},
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "project", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:         "taiga_get_" + f.toolSlug,
				Description:  "Get a single " + f.noun + " definition by id.",
				Title:        "Get " + f.noun + " definition",
				Tags:         []string{"custom-attributes", f.entityPath, "get"},
				ReadOnlyHint: true, IdempotentHint: true,
				Method: "GET", PathTemplate: "/" + f.slug + "/{id}",
				PathFields: []string{"id"},
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:            "taiga_create_" + f.toolSlug,
				Description:     "Define a new " + f.noun + " on a project.",
				Title:           "Create " + f.noun + " definition",
				Tags:            []string{"custom-attributes", f.entityPath, "create"},
				Method:          "POST",
				PathTemplate:    "/" + f.slug,
				BodyFields:      []string{"project", "name", "description", "type"},
				WriteEntityName: f.slug,
				ProjectIDField:  "project",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "project", Type: registry.FieldInteger, Required: true},
					{Name: "name", Type: registry.FieldString, Required: true},
					{Name: "description", Type: registry.FieldString},
					{Name: "type", Type: registry.FieldString},
				}},
			},
			Shim{
				Name:               "taiga_update_" + f.toolSlug,
				Description:        "Update a " + f.noun + " definition's fields.",
				Title:              "Update " + f.noun + " definition",
				Tags:               []string{"custom-attributes", f.entityPath, "update"},
				IdempotentHint:     true,
				Method:             "PATCH",
				PathTemplate:       "/" + f.slug + "/{id}",
				PathFields:         []string{"id"},
				BodyFields:         []string{"name", "description"},
				WriteEntityName:    f.slug,
				WriteEntityIDField: "id",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
					{Name: "name", Type: registry.FieldString},
					{Name: "description", Type: registry.FieldString},
				}},
			},
			Shim{
				Name:               "taiga_delete_" + f.toolSlug,
				Description:        "Remove a " + f.noun + " definition from a project.",
				Title:              "Delete " + f.noun + " definition",
				Tags:               []string{"custom-attributes", f.entityPath, "delete"},
				DestructiveHint:    true,
				Method:             "DELETE",
				PathTemplate:       "/" + f.slug + "/{id}",
				PathFields:         []string{"id"},
				WriteEntityName:    f.slug,
				WriteEntityIDField: "id",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:         "taiga_get_" + f.toolSlug + "_values",
				Description:  "Get the " + f.noun + " values set on a single " + f.entityPath + " item.",
				Title:        "Get " + f.noun + " values",
				Tags:         []string{"custom-attributes", f.entityPath, "get"},
				ReadOnlyHint: true, IdempotentHint: true,
				Method: "GET", PathTemplate: "/" + f.entityPath + "/custom-attributes-values/{id}",
				PathFields: []string{"id"},
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:               "taiga_update_" + f.toolSlug + "_values",
				Description:        "Set the " + f.noun + " values on a single " + f.entityPath + " item.",
				Title:              "Update " + f.noun + " values",
				Tags:               []string{"custom-attributes", f.entityPath, "update"},
				IdempotentHint:     true,
				Method:             "PATCH",
				PathTemplate:       "/" + f.entityPath + "/custom-attributes-values/{id}",
				PathFields:         []string{"id"},
				BodyFields:         []string{"attributes_values", "version"},
				WriteEntityName:    f.entityPath,
				WriteEntityIDField: "id",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
					{Name: "attributes_values", Type: registry.FieldObject, Required: true},
					{Name: "version", Type: registry.FieldInteger, Required: true},
				}},
			},
		)
	}
	return out
}
