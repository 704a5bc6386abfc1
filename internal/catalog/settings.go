package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// SettingsShims covers the project configuration sub-resources: points,
// issue types, issue statuses, task statuses, user story statuses,
// priorities, severities, and swimlanes.
func SettingsShims() []Shim {
	families := []struct {
		slug string // URL segment and tag, e.g. "points"
		noun string // human-readable singular, e.g. "point value"
	}{
		{"points", "point value"},
		{"issue-types", "issue type"},
		{"issue-statuses", "issue status"},
		{"task-statuses", "task status"},
		{"userstory-statuses", "user story status"},
		{"priorities", "priority"},
		{"severities", "severity"},
		{"swimlanes", "swimlane"},
	}

	var out []Shim
	for _, f := range families {
		toolSlug := snake(f.slug)
		out = append(out,
			Shim{
				Name:         "taiga_list_" + toolSlug,
				Description:  "List the " + f.noun + " options configured for a project.",
				Title:        "List " + f.noun + " options",
				Tags:         []string{"settings", f.slug, "list"},
				ReadOnlyHint: true, IdempotentHint: true,
				Method: "GET", PathTemplate: "/" + f.slug,
				QueryFields: []string{"project"},
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "project", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:         "taiga_get_" + singular(toolSlug),
				Description:  "Get a single " + f.noun + " option by id.",
				Title:        "Get " + f.noun,
				Tags:         []string{"settings", f.slug, "get"},
				ReadOnlyHint: true, IdempotentHint: true,
				Method: "GET", PathTemplate: "/" + f.slug + "/{id}",
				PathFields: []string{"id"},
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
				}},
			},
			Shim{
				Name:            "taiga_create_" + singular(toolSlug),
				Description:     "Add a new " + f.noun + " option to a project.",
				Title:           "Create " + f.noun,
				Tags:            []string{"settings", f.slug, "create"},
				Method:          "POST",
				PathTemplate:    "/" + f.slug,
				BodyFields:      []string{"project", "name", "color"},
				WriteEntityName: f.slug,
				ProjectIDField:  "project",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "project", Type: registry.FieldInteger, Required: true},
					{Name: "name", Type: registry.FieldString, Required: true},
					{Name: "color", Type: registry.FieldString},
				}},
			},
			Shim{
				Name:               "taiga_update_" + singular(toolSlug),
				Description:        "Update a " + f.noun + " option's fields.",
				Title:              "Update " + f.noun,
				Tags:               []string{"settings", f.slug, "update"},
				IdempotentHint:     true,
				Method:             "PATCH",
				PathTemplate:       "/" + f.slug + "/{id}",
				PathFields:         []string{"id"},
				BodyFields:         []string{"name", "color"},
				WriteEntityName:    f.slug,
				WriteEntityIDField: "id",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "id", Type: registry.FieldInteger, Required: true},
					{Name: "name", Type: registry.FieldString},
					{Name: "color", Type: registry.FieldString},
				}},
			},
			Shim{
				Name:               "taiga_delete_" + singular(toolSlug),
				Description:        "Remove a " + f.noun + " option from a project.",
				Title:              "Delete " + f.noun,
				Tags:               []string{"settings", f.slug, "delete"},
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
				Name:               "taiga_bulk_update_" + toolSlug + "_order",
				Description:        "Reorder the " + f.noun + " options of a project.",
				Title:              "Reorder " + f.noun + " options",
				Tags:               []string{"settings", f.slug, "update", "bulk"},
				IdempotentHint:     true,
				Method:             "POST",
				PathTemplate:       "/" + f.slug + "/bulk_update_order",
				BodyFields:         []string{"project", "bulk_" + toolSlug},
				WriteEntityName:    f.slug,
				ProjectIDField:     "project",
				Schema: registry.Schema{Fields: []registry.Field{
					{Name: "project", Type: registry.FieldInteger, Required: true},
					{Name: "bulk_" + toolSlug, Type: registry.FieldArray, Required: true},
				}},
			},
		)
	}
	return out
}

// snake rewrites a hyphenated slug like "issue-types" into "issue_types".
func snake(slug string) string {
	out := make([]byte, len(slug))
	for i := 0; i < len(slug); i++ {
		if slug[i] == '-' {
			out[i] = '_'
			continue
		}
		out[i] = slug[i]
	}
	return string(out)
}

// singular drops a trailing "s" from a snake_case tool slug for verbs that
// operate on one item ("points" -> "point"); families already singular
// (severities handled via "ies" -> "y") are special-cased.
func singular(slug string) string {
	switch {
	case len(slug) > 8 && slug[len(slug)-8:] == "statuses":
		return slug[:len(slug)-2]
	case len(slug) > 3 && slug[len(slug)-3:] == "ies":
		return slug[:len(slug)-3] + "y"
	case len(slug) > 0 && slug[len(slug)-1] == 's':
		return slug[:len(slug)-1]
	default:
		return slug
	}
}
