package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// ResourceHandler is a pure read handler: given the path variables bound
// from the resource's URI template, it returns the resource body. Resources
// perform no writes (spec §4.1 "Resources are purely read handlers").
type ResourceHandler func(ctx context.Context, vars map[string]string) (any, error)

// Resource is the full descriptor for one MCP resource.
type Resource struct {
	Name        string
	Description string
	URITemplate string
	MIMEType    string

	segments []templateSegment
	Handler  ResourceHandler
}

// templateSegment is one "/"-delimited piece of a parsed URI template: a
// literal to match verbatim, or a {name} placeholder to bind.
type templateSegment struct {
	literal string
	varName string // empty when this segment is a literal
}

// parseTemplate compiles the server's small subset of RFC 6570 templates:
// "/"-separated segments that are either literal or a single "{name}"
// placeholder spanning the whole segment. This covers every resource named
// in SPEC_FULL.md (taiga://users/me, taiga://projects/{project_id}/stats,
// taiga://projects/{project_id}/config) without pulling in a full RFC 6570
// implementation for three fixed shapes.
func parseTemplate(tmpl string) ([]templateSegment, error) {
	parts := strings.Split(tmpl, "/")
	segs := make([]templateSegment, 0, len(parts))
	for _, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") && len(p) > 2 {
			segs = append(segs, templateSegment{varName: p[1 : len(p)-1]})
			continue
		}
		if strings.Contains(p, "{") || strings.Contains(p, "}") {
			return nil, fmt.Errorf("malformed template segment %q", p)
		}
		segs = append(segs, templateSegment{literal: p})
	}
	return segs, nil
}

// match attempts to bind uri against segs, returning the bound variables on
// success and ok=false on a structural or literal mismatch.
func match(segs []templateSegment, uri string) (map[string]string, bool) {
	parts := strings.Split(uri, "/")
	if len(parts) != len(segs) {
		return nil, false
	}
	vars := make(map[string]string)
	for i, seg := range segs {
		if seg.varName != "" {
			if parts[i] == "" {
				return nil, false
			}
			vars[seg.varName] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	return vars, true
}

// ResourceRegistry maps resource name to descriptor and resolves incoming
// URIs against each registered template at call time.
type ResourceRegistry struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

// NewResourceRegistry returns an empty registry.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{resources: make(map[string]Resource)}
}

// Register parses r's URI template and adds it to the registry. Returns an
// error on a malformed template or a duplicate name.
func (r *ResourceRegistry) Register(res Resource) error {
	segs, err := parseTemplate(res.URITemplate)
	if err != nil {
		return fmt.Errorf("registry: invalid URI template %q for resource %q: %w", res.URITemplate, res.Name, err)
	}
	res.segments = segs

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.resources[res.Name]; exists {
		return fmt.Errorf("registry: duplicate resource registration: %q", res.Name)
	}
	r.resources[res.Name] = res
	return nil
}

// Get looks up a resource descriptor by name.
func (r *ResourceRegistry) Get(name string) (Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[name]
	if !ok {
		return Resource{}, taigaerr.Newf(taigaerr.NotFound, "unknown resource %q", name)
	}
	return res, nil
}

// Resolve finds the resource whose template matches uri and returns the
// bound path variables. Returns NotFound if no template matches.
func (r *ResourceRegistry) Resolve(uri string) (Resource, map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.resources {
		if vars, ok := match(res.segments, uri); ok {
			return res, vars, nil
		}
	}
	return Resource{}, nil, taigaerr.Newf(taigaerr.NotFound, "no resource template matches %q", uri)
}

// List returns all registered resources sorted by name.
func (r *ResourceRegistry) List() []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resource, 0, len(r.resources))
	for _, res := range r.resources {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports the number of registered resources.
func (r *ResourceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resources)
}

// Dispatch resolves uri against the registered templates and invokes the
// matching resource's handler with the bound path variables.
func (r *ResourceRegistry) Dispatch(ctx context.Context, uri string) (any, error) {
	res, vars, err := r.Resolve(uri)
	if err != nil {
		return nil, err
	}
	return res.Handler(ctx, vars)
}
