// Package middleware implements the ordered invocation chain that wraps
// every tool call, resource read, and prompt render: error handling (with
// retry), rate limiting, timing, and structured logging — composed
// outermost to innermost in that order, mirroring how
// internal/observe.Middleware composes tracing and logging around HTTP
// requests in the teacher codebase.
package middleware

import (
	"context"
)

// Kind identifies what sort of MCP invocation is passing through the chain.
type Kind string

const (
	KindTool     Kind = "tool"
	KindResource Kind = "resource"
	KindPrompt   Kind = "prompt"
)

// Invocation describes a single pass through the chain. Middlewares read
// (and in the case of CorrelationID, write) fields here but never mutate
// Args or the eventual result.
type Invocation struct {
	Kind Kind

	// Target is the tool/resource/prompt name, e.g. "taiga_get_project".
	Target string

	// IdempotentHint mirrors the registry descriptor's idempotentHint
	// annotation. Method carries the proxy HTTP method for the operation
	// ("GET", "POST", "PUT", "DELETE", ...); GET and HEAD are always safe to
	// retry regardless of IdempotentHint.
	IdempotentHint bool
	Method         string

	// ReadOnlyHint mirrors the registry descriptor's readOnlyHint.
	ReadOnlyHint bool

	// Args is the decoded, schema-validated argument value (or URI template
	// bindings for a resource, or prompt parameters).
	Args any

	// CorrelationID is generated by the error-handling middleware if absent
	// on entry, then propagated inward and attached to every log record.
	CorrelationID string
}

// Safe reports whether retries are permitted for this invocation per the
// idempotent-retry-safety property: a retry is only allowed when the
// target carries IdempotentHint, or the proxy method is GET/HEAD.
func (inv *Invocation) Safe() bool {
	if inv.IdempotentHint {
		return true
	}
	switch inv.Method {
	case "GET", "HEAD":
		return true
	default:
		return false
	}
}

// Handler executes the innermost operation (the actual tool/resource/prompt
// body) and returns its result or a kind-bearing error from
// internal/taigaerr.
type Handler func(ctx context.Context, inv *Invocation) (any, error)

// Middleware wraps a Handler to produce a new Handler that adds behaviour
// before and/or after calling next.
type Middleware func(next Handler) Handler

// Chain composes middlewares outermost-first: Chain(a, b, c)(h) behaves as
// a(b(c(h))) — a sees the call first and the result last.
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		h := final
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
