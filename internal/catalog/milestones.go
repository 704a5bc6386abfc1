package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// MilestoneShims covers /milestones (sprints).
func MilestoneShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_milestones",
			Description:  "List milestones (sprints) for a project.",
			Title:        "List milestones",
			Tags:         []string{"milestones", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/milestones",
			QueryFields: []string{"project", "closed"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger},
				{Name: "closed", Type: registry.FieldBoolean},
			}},
		},
		{
			Name:         "taiga_get_milestone",
			Description:  "Get a single milestone by id.",
			Title:        "Get milestone",
			Tags:         []string{"milestones", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/milestones/{id}",
			PathFields:   []string{"id"},
			EndpointName: "/milestones/{id}",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_milestone",
			Description:     "Create a new milestone (sprint) in a project.",
			Title:           "Create milestone",
			Tags:            []string{"milestones", "create"},
			Method:          "POST",
			PathTemplate:    "/milestones",
			BodyFields:      []string{"project", "name", "estimated_start", "estimated_finish"},
			WriteEntityName: "milestones",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "name", Type: registry.FieldString, Required: true},
				{Name: "estimated_start", Type: registry.FieldString, Required: true},
				{Name: "estimated_finish", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_milestone",
			Description:        "Update a milestone's fields.",
			Title:              "Update milestone",
			Tags:               []string{"milestones", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/milestones/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"name", "estimated_start", "estimated_finish", "closed"},
			WriteEntityName:    "milestones",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "name", Type: registry.FieldString},
				{Name: "estimated_start", Type: registry.FieldString},
				{Name: "estimated_finish", Type: registry.FieldString},
				{Name: "closed", Type: registry.FieldBoolean},
			}},
		},
		{
			Name:               "taiga_delete_milestone",
			Description:        "Permanently delete a milestone.",
			Title:              "Delete milestone",
			Tags:               []string{"milestones", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/milestones/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "milestones",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_milestone_stats",
			Description:  "Get burndown/stats data for a milestone.",
			Title:        "Get milestone stats",
			Tags:         []string{"milestones", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/milestones/{id}/stats",
			PathFields:   []string{"id"},
			EndpointName: "/milestones/{id}/stats",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
