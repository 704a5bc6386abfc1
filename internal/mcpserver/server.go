package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taiga-mcp/taiga-mcp-server/internal/config"
	"github.com/taiga-mcp/taiga-mcp-server/internal/middleware"
	"github.com/taiga-mcp/taiga-mcp-server/internal/observe"
	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Server adapts a populated Container onto the modelcontextprotocol/go-sdk
// server, and runs it over stdio or streamable HTTP per config.Transport.
type Server struct {
	container *Container
	mcp       *mcp.Server
}

// NewServer builds the go-sdk server from c's registries, wrapping every
// handler in c.Chain before registration.
func NewServer(c *Container) *Server {
	s := &Server{
		container: c,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "taiga-mcp-server",
			Version: version,
		}, &mcp.ServerOptions{
			HasTools:     true,
			HasPrompts:   true,
			HasResources: true,
		}),
	}
	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// registerTools wires every catalog/management tool onto the go-sdk server,
// translating registry.Schema into a jsonschema.Schema and routing each
// call through the middleware chain before reaching ToolRegistry.Dispatch.
func (s *Server) registerTools() {
	for _, t := range s.container.Tools.List() {
		t := t
		tool := &mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: toJSONSchema(t.Schema),
			Annotations: &mcp.ToolAnnotations{
				Title:           t.Title,
				ReadOnlyHint:    t.ReadOnlyHint,
				DestructiveHint: &t.DestructiveHint,
				IdempotentHint:  t.IdempotentHint,
				OpenWorldHint:   &t.OpenWorldHint,
			},
		}

		final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
			args, _ := inv.Args.(map[string]any)
			return s.container.Tools.Dispatch(ctx, inv.Target, args)
		}
		chained := s.container.Chain(final)

		handler := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args map[string]any
			if len(req.Params.Arguments) > 0 {
				if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
					return errorResult(taigaerr.Wrap(taigaerr.InvalidInput, err, "decoding tool arguments")), nil
				}
			}
			out, err := chained(ctx, &middleware.Invocation{
				Kind:           middleware.KindTool,
				Target:         t.Name,
				IdempotentHint: t.IdempotentHint,
				Method:         t.Method,
				Args:           args,
			})
			if err != nil {
				return errorResult(err), nil
			}
			return textResult(out), nil
		}

		s.mcp.AddTool(tool, handler)
	}
}

// registerResources wires every fixed-URI resource onto the server via a
// single shared handler, since every template is distinguished by the
// incoming URI rather than by separate per-resource callbacks.
func (s *Server) registerResources() {
	for _, r := range s.container.Resources.List() {
		r := r
		s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
			Name:        r.Name,
			Description: r.Description,
			URITemplate: r.URITemplate,
			MIMEType:    r.MIMEType,
		}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
			return s.readResource(ctx, req.Params.URI)
		})
	}
}

// readResource resolves uri against the resource registry and wraps the
// dispatch in the middleware chain, mirroring the tool dispatch path.
func (s *Server) readResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	res, vars, err := s.container.Resources.Resolve(uri)
	if err != nil {
		return nil, err
	}

	chained := s.container.Chain(func(ctx context.Context, inv *middleware.Invocation) (any, error) {
		return s.container.Resources.Dispatch(ctx, uri)
	})

	out, err := chained(ctx, &middleware.Invocation{
		Kind:         middleware.KindResource,
		Target:       res.Name,
		ReadOnlyHint: true,
		Method:       "GET",
		Args:         vars,
	})
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(out)
	if err != nil {
		return nil, taigaerr.Wrap(taigaerr.Internal, err, "encoding resource body")
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: res.MIMEType, Text: string(body)},
		},
	}, nil
}

// registerPrompts wires every prompt onto the server, rendering through
// Prompt.Render (which validates required arguments) and returning the
// rendered text as a single user-role message.
func (s *Server) registerPrompts() {
	for _, p := range s.container.Prompts.List() {
		p := p
		args := make([]*mcp.PromptArgument, 0, len(p.Args))
		for _, a := range p.Args {
			args = append(args, &mcp.PromptArgument{
				Name:        a.Name,
				Description: a.Description,
				Required:    a.Required,
			})
		}

		s.mcp.AddPrompt(&mcp.Prompt{
			Name:        p.Name,
			Description: p.Description,
			Arguments:   args,
		}, func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			final := func(ctx context.Context, inv *middleware.Invocation) (any, error) {
				params, _ := inv.Args.(map[string]string)
				return p.Render(params)
			}
			chained := s.container.Chain(final)

			out, err := chained(ctx, &middleware.Invocation{
				Kind: middleware.KindPrompt,
				// Prompts are pure rendering functions with no upstream
				// side effects (spec §4.1), so they are always safe to
				// retry regardless of IdempotentHint.
				Method: "GET",
				Target: p.Name,
				Args:   req.Params.Arguments,
			})
			if err != nil {
				return nil, err
			}
			text, _ := out.(string)
			return &mcp.GetPromptResult{
				Description: p.Description,
				Messages: []*mcp.PromptMessage{
					{Role: "user", Content: &mcp.TextContent{Text: text}},
				},
			}, nil
		})
	}
}

// Run blocks serving the MCP server over the transport named in cfg: stdio,
// or streamable HTTP with health endpoints mounted alongside /mcp.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	switch cfg.Transport {
	case config.TransportHTTP:
		return s.runHTTP(ctx, cfg)
	default:
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	}
}

func (s *Server) runHTTP(ctx context.Context, cfg *config.Config) error {
	httpHandler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return s.mcp },
		&mcp.StreamableHTTPOptions{Stateless: true},
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpHandler)
	s.container.Health.Register(mux)

	addr := fmt.Sprintf("%s:%d", cfg.MCPHost, cfg.MCPPort)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           observe.Middleware(s.container.metrics)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("mcpserver: http serve: %w", err)
	}
	return nil
}

// toJSONSchema translates the catalog's flat field list into the SDK's
// jsonschema.Schema shape.
func toJSONSchema(s registry.Schema) *jsonschema.Schema {
	props := make(map[string]*jsonschema.Schema, len(s.Fields))
	var required []string
	for _, f := range s.Fields {
		props[f.Name] = &jsonschema.Schema{
			Type:        string(f.Type),
			Description: f.Description,
		}
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// errorResult renders err as an MCP tool error result whose text is err's
// taigaerr.Kind followed by err.Error(), so the client always sees the
// stable kind tag ahead of the error message.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s: %s", taigaerr.KindOf(err), err.Error())},
		},
	}
}

// textResult renders a successful handler result as a single JSON text
// content block.
func textResult(v any) *mcp.CallToolResult {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResult(taigaerr.Wrap(taigaerr.Internal, err, "encoding tool result"))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}
}
