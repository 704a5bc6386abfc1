package registry_test

import (
	"context"
	"testing"

	"github.com/taiga-mcp/taiga-mcp-server/internal/registry"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

func TestToolRegistry_RegisterAndGet(t *testing.T) {
	r := registry.NewToolRegistry()
	tool := registry.Tool{
		Name: "taiga_get_project",
		Schema: registry.Schema{Fields: []registry.Field{
			{Name: "project_id", Type: registry.FieldInteger, Required: true},
		}},
		Handler: func(ctx context.Context, args map[string]any) (any, error) { return args, nil },
	}
	if err := r.Register(tool); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := r.Get("taiga_get_project")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != tool.Name {
		t.Errorf("got.Name = %q, want %q", got.Name, tool.Name)
	}
}

func TestToolRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := registry.NewToolRegistry()
	tool := registry.Tool{Name: "taiga_get_project"}
	if err := r.Register(tool); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(tool); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}

func TestToolRegistry_MissingNameIsNotFound(t *testing.T) {
	r := registry.NewToolRegistry()
	_, err := r.Get("taiga_does_not_exist")
	if taigaerr.KindOf(err) != taigaerr.NotFound {
		t.Errorf("kind = %v, want NotFound", taigaerr.KindOf(err))
	}
}

func TestToolRegistry_ListSortedByName(t *testing.T) {
	r := registry.NewToolRegistry()
	for _, name := range []string{"taiga_z", "taiga_a", "taiga_m"} {
		_ = r.Register(registry.Tool{Name: name})
	}
	names := r.List()
	want := []string{"taiga_a", "taiga_m", "taiga_z"}
	for i, tool := range names {
		if tool.Name != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, tool.Name, want[i])
		}
	}
}

func TestSchema_Validate_MissingRequiredField(t *testing.T) {
	s := registry.Schema{Fields: []registry.Field{
		{Name: "project_id", Type: registry.FieldInteger, Required: true},
	}}
	err := s.Validate(map[string]any{})
	if taigaerr.KindOf(err) != taigaerr.InvalidInput {
		t.Fatalf("kind = %v, want InvalidInput", taigaerr.KindOf(err))
	}
	var te *taigaerr.Error
	if te, _ = err.(*taigaerr.Error); te == nil || te.FieldPath != "project_id" {
		t.Errorf("FieldPath = %q, want project_id", te.FieldPath)
	}
}

func TestSchema_Validate_TypeMismatch(t *testing.T) {
	s := registry.Schema{Fields: []registry.Field{
		{Name: "project_id", Type: registry.FieldInteger, Required: true},
	}}
	err := s.Validate(map[string]any{"project_id": "not-a-number"})
	if taigaerr.KindOf(err) != taigaerr.InvalidInput {
		t.Fatalf("kind = %v, want InvalidInput", taigaerr.KindOf(err))
	}
}

func TestSchema_Validate_OptionalFieldAbsent(t *testing.T) {
	s := registry.Schema{Fields: []registry.Field{
		{Name: "name", Type: registry.FieldString, Required: false},
	}}
	if err := s.Validate(map[string]any{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSchema_Validate_ValidInput(t *testing.T) {
	s := registry.Schema{Fields: []registry.Field{
		{Name: "project_id", Type: registry.FieldInteger, Required: true},
		{Name: "name", Type: registry.FieldString, Required: false},
	}}
	err := s.Validate(map[string]any{"project_id": float64(7), "name": "sprint-1"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestToolRegistry_DispatchValidatesBeforeHandling(t *testing.T) {
	r := registry.NewToolRegistry()
	called := false
	_ = r.Register(registry.Tool{
		Name: "taiga_get_project",
		Schema: registry.Schema{Fields: []registry.Field{
			{Name: "project_id", Type: registry.FieldInteger, Required: true},
		}},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			called = true
			return args["project_id"], nil
		},
	})

	_, err := r.Dispatch(context.Background(), "taiga_get_project", map[string]any{})
	if taigaerr.KindOf(err) != taigaerr.InvalidInput {
		t.Fatalf("kind = %v, want InvalidInput", taigaerr.KindOf(err))
	}
	if called {
		t.Error("handler should not run when schema validation fails")
	}

	result, err := r.Dispatch(context.Background(), "taiga_get_project", map[string]any{"project_id": float64(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != float64(7) {
		t.Errorf("result = %v, want 7", result)
	}
	if !called {
		t.Error("handler should have run")
	}
}

func TestResourceRegistry_ResolveBindsPathVariables(t *testing.T) {
	r := registry.NewResourceRegistry()
	err := r.Register(registry.Resource{
		Name:        "project_stats",
		URITemplate: "taiga://projects/{project_id}/stats",
		Handler: func(ctx context.Context, vars map[string]string) (any, error) {
			return vars, nil
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	res, vars, err := r.Resolve("taiga://projects/42/stats")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "project_stats" {
		t.Errorf("resolved resource = %q, want project_stats", res.Name)
	}
	if vars["project_id"] != "42" {
		t.Errorf("project_id = %q, want 42", vars["project_id"])
	}
}

func TestResourceRegistry_ResolveNoMatch(t *testing.T) {
	r := registry.NewResourceRegistry()
	_ = r.Register(registry.Resource{Name: "user_me", URITemplate: "taiga://users/me"})
	_, _, err := r.Resolve("taiga://projects/1/stats")
	if taigaerr.KindOf(err) != taigaerr.NotFound {
		t.Errorf("kind = %v, want NotFound", taigaerr.KindOf(err))
	}
}

func TestResourceRegistry_InvalidTemplateRejected(t *testing.T) {
	r := registry.NewResourceRegistry()
	err := r.Register(registry.Resource{Name: "bad", URITemplate: "taiga://projects/{unterminated"})
	if err == nil {
		t.Fatal("expected error for malformed template")
	}
}

func TestPromptRegistry_RenderValidatesRequiredArgs(t *testing.T) {
	r := registry.NewPromptRegistry()
	p := registry.Prompt{
		Name: "sprint_planning",
		Args: []registry.PromptArg{{Name: "project_id", Required: true}},
		Handler: func(params map[string]string) (string, error) {
			return "plan for project " + params["project_id"], nil
		},
	}
	if err := r.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := r.Get("sprint_planning")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := got.Render(map[string]string{}); taigaerr.KindOf(err) != taigaerr.InvalidInput {
		t.Errorf("kind = %v, want InvalidInput for missing required arg", taigaerr.KindOf(err))
	}

	out, err := got.Render(map[string]string{"project_id": "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "plan for project 7" {
		t.Errorf("rendered = %q", out)
	}
}

func TestPromptRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := registry.NewPromptRegistry()
	p := registry.Prompt{Name: "issue_triage"}
	if err := r.Register(p); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(p); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}
