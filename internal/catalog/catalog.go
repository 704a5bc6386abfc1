// Package catalog drives the ~200 uniform tool shims from small
// declarative descriptors rather than one hand-written Go type per
// endpoint, per spec §9's design note. Every shim is one of eleven
// standard shapes (list, get, get-by-alt-key, create, update, delete,
// bulk-create, bulk-update, bulk-delete, bulk-order, action) against one of
// the ~14 Taiga endpoint families in spec §6. A shim's entire behaviour is
// "validate args → call one method of the cached client → return the
// decoded value" (spec §4.1); Build compiles the table into registry.Tool
// values that do exactly that.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/taiga-mcp/taiga-mcp-server/internal/cache"
	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Shim is the declarative descriptor for one tool. A handful of fields
// describe everything the generic dispatcher needs: how to build the HTTP
// request, whether the read is cacheable, and what a successful write
// invalidates.
type Shim struct {
	// Name is the full tool name, e.g. "taiga_get_project".
	Name        string
	Description string
	Title       string
	Tags        []string

	ReadOnlyHint    bool
	DestructiveHint bool
	IdempotentHint  bool

	Method       string // "GET", "POST", "PUT", "PATCH", "DELETE"
	PathTemplate string // e.g. "/projects/{id}"; {field} bound from args

	// PathFields lists which schema fields are substituted into
	// PathTemplate (and therefore excluded from the query string / body).
	PathFields []string

	// QueryFields lists which schema fields (when present in args) are
	// forwarded as URL query parameters. Only meaningful for GET.
	QueryFields []string

	// BodyFields lists which schema fields are forwarded verbatim as the
	// JSON request body, keyed by field name. Empty for GET/DELETE.
	BodyFields []string

	// EndpointName is the cache policy lookup key (internal/cache.Lookup).
	// Empty means "never cached" even for a GET.
	EndpointName string

	// WriteEntityName and WriteEntityIDField describe the invalidation
	// scope for a write (spec §4.6): entity name plus the args field
	// holding its id. ProjectIDField names the args field holding the
	// owning project id, when applicable.
	WriteEntityName    string
	WriteEntityIDField string
	ProjectIDField     string

	Schema registry.Schema
}

// isRead reports whether this shim performs a GET.
func (s Shim) isRead() bool { return s.Method == "" || s.Method == "GET" || s.Method == "HEAD" }

// Build compiles shims into tool descriptors bound to client, registering
// each into reg. Returns the first registration error encountered
// (duplicate names), wrapped with the offending shim's name.
func Build(shims []Shim, client *cache.CachedClient, reg *registry.ToolRegistry) error {
	for _, s := range shims {
		tool := registry.Tool{
			Name:            s.Name,
			Description:     s.Description,
			Title:           s.Title,
			Tags:            s.Tags,
			ReadOnlyHint:    s.ReadOnlyHint,
			DestructiveHint: s.DestructiveHint,
			IdempotentHint:  s.IdempotentHint,
			OpenWorldHint:   true,
			Method:          method(s),
			Schema:          s.Schema,
			Handler:         handlerFor(s, client),
		}
		if err := reg.Register(tool); err != nil {
			return fmt.Errorf("catalog: registering %q: %w", s.Name, err)
		}
	}
	return nil
}

// handlerFor closes over one shim and returns the generic registry.ToolHandler
// that implements it: substitute path params, build query or body, dispatch
// through the cached client, return the decoded value.
func handlerFor(s Shim, client *cache.CachedClient) registry.ToolHandler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		path, err := substitutePath(s.PathTemplate, s.PathFields, args)
		if err != nil {
			return nil, err
		}

		spec := taigaclient.RequestSpec{Method: method(s), Path: path}

		if s.isRead() {
			spec.Query = buildQuery(s.QueryFields, args)
		} else if len(s.BodyFields) > 0 {
			spec.Body = buildBody(s.BodyFields, args)
		}

		var out map[string]any
		if s.isRead() && s.EndpointName != "" {
			err = client.Read(ctx, s.EndpointName, spec, &out)
		} else if s.isRead() {
			err = client.Read(ctx, "", spec, &out) // policy lookup misses; always upstream
		} else {
			scope := deriveScope(s, args)
			err = client.Write(ctx, spec, scope, &out)
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

func method(s Shim) string {
	if s.Method == "" {
		return "GET"
	}
	return s.Method
}

// substitutePath replaces every "{field}" placeholder in tmpl with the
// string form of args[field]. Missing required path fields are a schema
// bug, not a user input error, so the schema itself should already mark
// them required; substitutePath surfaces InvalidInput defensively.
func substitutePath(tmpl string, fields []string, args map[string]any) (string, error) {
	out := tmpl
	for _, f := range fields {
		v, ok := args[f]
		if !ok {
			return "", taigaerr.Newf(taigaerr.InvalidInput, "missing path field %q", f).WithField(f)
		}
		out = strings.ReplaceAll(out, "{"+f+"}", valueToString(v))
	}
	return out, nil
}

func buildQuery(fields []string, args map[string]any) url.Values {
	q := url.Values{}
	for _, f := range fields {
		v, ok := args[f]
		if !ok || v == nil {
			continue
		}
		q.Set(f, valueToString(v))
	}
	return q
}

func buildBody(fields []string, args map[string]any) map[string]any {
	body := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := args[f]; ok {
			body[f] = v
		}
	}
	return body
}

func valueToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// deriveScope builds the cache.WriteScope for a write shim from its args,
// per spec §4.6's invalidation rule: project-scoped and/or entity-id-scoped.
func deriveScope(s Shim, args map[string]any) cache.WriteScope {
	scope := cache.WriteScope{EntityName: s.WriteEntityName}
	if s.ProjectIDField != "" {
		if v, ok := args[s.ProjectIDField]; ok {
			if id, ok := toInt(v); ok {
				scope.ProjectID = &id
			}
		}
	}
	if s.WriteEntityIDField != "" {
		if v, ok := args[s.WriteEntityIDField]; ok {
			if id, ok := toInt(v); ok {
				scope.EntityID = &id
			}
		}
	}
	return scope
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}

// All aggregates every category's shim table. The container calls this once
// at startup.
func All() []Shim {
	var out []Shim
	out = append(out, AuthShims()...)
	out = append(out, UserShims()...)
	out = append(out, ProjectShims()...)
	out = append(out, MembershipShims()...)
	out = append(out, UserStoryShims()...)
	out = append(out, EpicShims()...)
	out = append(out, IssueShims()...)
	out = append(out, TaskShims()...)
	out = append(out, MilestoneShims()...)
	out = append(out, WikiShims()...)
	out = append(out, WebhookShims()...)
	out = append(out, SettingsShims()...)
	out = append(out, CustomAttributeShims()...)
	out = append(out, SearchShims()...)
	out = append(out, TimelineShims()...)
	return out
}
