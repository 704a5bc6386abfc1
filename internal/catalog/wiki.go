package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// WikiShims covers /wiki (pages) and /wiki-links.
func WikiShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_wiki_pages",
			Description:  "List wiki pages for a project.",
			Title:        "List wiki pages",
			Tags:         []string{"wiki", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/wiki",
			QueryFields: []string{"project"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_wiki_page",
			Description:  "Get a single wiki page by id.",
			Title:        "Get wiki page",
			Tags:         []string{"wiki", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/wiki/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_wiki_page_by_slug",
			Description:  "Get a wiki page by project and slug.",
			Title:        "Get wiki page by slug",
			Tags:         []string{"wiki", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/wiki/by_slug",
			QueryFields: []string{"project", "slug"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "slug", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:            "taiga_create_wiki_page",
			Description:     "Create a new wiki page in a project.",
			Title:           "Create wiki page",
			Tags:            []string{"wiki", "create"},
			Method:          "POST",
			PathTemplate:    "/wiki",
			BodyFields:      []string{"project", "slug", "content"},
			WriteEntityName: "wiki",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "slug", Type: registry.FieldString, Required: true},
				{Name: "content", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_wiki_page",
			Description:        "Update a wiki page's content.",
			Title:              "Update wiki page",
			Tags:               []string{"wiki", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/wiki/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"content", "version"},
			WriteEntityName:    "wiki",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "content", Type: registry.FieldString, Required: true},
				{Name: "version", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_delete_wiki_page",
			Description:        "Permanently delete a wiki page.",
			Title:              "Delete wiki page",
			Tags:               []string{"wiki", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/wiki/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "wiki",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_wiki_links",
			Description:  "List the sidebar links of a project's wiki.",
			Title:        "List wiki links",
			Tags:         []string{"wiki", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/wiki-links",
			QueryFields: []string{"project"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
