// Package registry holds the three name-indexed catalogs (tools,
// resources, prompts) that back MCP dispatch, grounded on the teacher's
// internal/mcp/tools.Tool type: a small descriptor pairing an LLM-facing
// schema with a handler function, here generalised from one hand-written
// struct per tool to a table of ~200 uniformly-shaped entries (spec §9).
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// ToolHandler executes a tool's body against decoded, schema-validated
// arguments.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

// Tool is the full descriptor for one MCP tool: name, human description,
// tag/hint annotations, typed input schema, and the async handler.
type Tool struct {
	Name        string
	Description string
	Title       string
	Tags        []string

	ReadOnlyHint    bool
	DestructiveHint bool
	IdempotentHint  bool
	// OpenWorldHint is always true for this server's tools (spec §6): every
	// tool talks to an open-world upstream (the Taiga REST API).
	OpenWorldHint bool

	// Method is the proxied upstream HTTP method ("GET", "POST", "PUT",
	// "PATCH", "DELETE"), threaded through to middleware.Invocation so the
	// error-handling middleware's retry policy can tell non-idempotent
	// writes apart from safely-retryable reads (spec §4.2 item 1, §8).
	Method string

	Schema  Schema
	Handler ToolHandler
}

// ToolRegistry maps tool name to descriptor with O(1) lookup. Safe for
// concurrent use; registration is expected at startup only, lookup happens
// on every invocation.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry returns an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]Tool)}
}

// Register adds t to the registry. Re-registering an existing name is a
// fatal configuration error (spec §4.1 "names are globally unique within
// their kind"), surfaced to the caller rather than panicking so the
// container can map it to exit code 2.
func (r *ToolRegistry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("registry: duplicate tool registration: %q", t.Name)
	}
	r.tools[t.Name] = t
	return nil
}

// Get looks up a tool by name. Returns a NotFound *taigaerr.Error when
// absent, per the dispatch contract.
func (r *ToolRegistry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return Tool{}, taigaerr.Newf(taigaerr.NotFound, "unknown tool %q", name)
	}
	return t, nil
}

// List returns all registered tools sorted by name, for catalog
// introspection (listTools) and tests.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports the number of registered tools.
func (r *ToolRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Dispatch implements the tool half of the dispatch contract (spec §4.1):
// look up name (NotFound on miss), validate rawArgs against the declared
// schema (InvalidInput with field path on failure), then invoke the
// handler. This is the single entry point the middleware chain's innermost
// Handler calls for KindTool invocations.
func (r *ToolRegistry) Dispatch(ctx context.Context, name string, rawArgs map[string]any) (any, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := t.Schema.Validate(rawArgs); err != nil {
		return nil, err
	}
	return t.Handler(ctx, rawArgs)
}
