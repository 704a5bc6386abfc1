package catalog

import "github.com/taiga-mcp/taiga-mcp-server/internal/registry"

// WebhookShims covers /webhooks and their delivery logs.
func WebhookShims() []Shim {
	return []Shim{
		{
			Name:         "taiga_list_webhooks",
			Description:  "List webhooks configured for a project.",
			Title:        "List webhooks",
			Tags:         []string{"webhooks", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/webhooks",
			QueryFields: []string{"project"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_webhook",
			Description:  "Get a single webhook by id.",
			Title:        "Get webhook",
			Tags:         []string{"webhooks", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/webhooks/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:            "taiga_create_webhook",
			Description:     "Register a new webhook for a project.",
			Title:           "Create webhook",
			Tags:            []string{"webhooks", "create"},
			Method:          "POST",
			PathTemplate:    "/webhooks",
			BodyFields:      []string{"project", "name", "url", "key"},
			WriteEntityName: "webhooks",
			ProjectIDField:  "project",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "project", Type: registry.FieldInteger, Required: true},
				{Name: "name", Type: registry.FieldString, Required: true},
				{Name: "url", Type: registry.FieldString, Required: true},
				{Name: "key", Type: registry.FieldString, Required: true},
			}},
		},
		{
			Name:               "taiga_update_webhook",
			Description:        "Update a webhook's configuration.",
			Title:              "Update webhook",
			Tags:               []string{"webhooks", "update"},
			IdempotentHint:     true,
			Method:             "PATCH",
			PathTemplate:       "/webhooks/{id}",
			PathFields:         []string{"id"},
			BodyFields:         []string{"name", "url", "key"},
			WriteEntityName:    "webhooks",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
				{Name: "name", Type: registry.FieldString},
				{Name: "url", Type: registry.FieldString},
				{Name: "key", Type: registry.FieldString},
			}},
		},
		{
			Name:               "taiga_delete_webhook",
			Description:        "Remove a webhook from a project.",
			Title:              "Delete webhook",
			Tags:               []string{"webhooks", "delete"},
			DestructiveHint:    true,
			Method:             "DELETE",
			PathTemplate:       "/webhooks/{id}",
			PathFields:         []string{"id"},
			WriteEntityName:    "webhooks",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_test_webhook",
			Description:        "Send a test delivery to a configured webhook.",
			Title:              "Test webhook",
			Tags:               []string{"webhooks", "action"},
			Method:             "POST",
			PathTemplate:       "/webhooks/{id}/test",
			PathFields:         []string{"id"},
			WriteEntityName:    "webhooks",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_list_webhook_logs",
			Description:  "List delivery logs for a webhook.",
			Title:        "List webhook logs",
			Tags:         []string{"webhooks", "list"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/webhooklogs",
			QueryFields: []string{"webhook"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "webhook", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:         "taiga_get_webhook_log",
			Description:  "Get a single webhook delivery log entry.",
			Title:        "Get webhook log",
			Tags:         []string{"webhooks", "get"},
			ReadOnlyHint: true, IdempotentHint: true,
			Method: "GET", PathTemplate: "/webhooklogs/{id}",
			PathFields: []string{"id"},
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
		{
			Name:               "taiga_resend_webhook_log",
			Description:        "Redeliver a previously-sent webhook payload.",
			Title:              "Resend webhook log",
			Tags:               []string{"webhooks", "action"},
			Method:             "POST",
			PathTemplate:       "/webhooklogs/{id}/resend",
			PathFields:         []string{"id"},
			WriteEntityName:    "webhooklogs",
			WriteEntityIDField: "id",
			Schema: registry.Schema{Fields: []registry.Field{
				{Name: "id", Type: registry.FieldInteger, Required: true},
			}},
		},
	}
}
