package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// PromptHandler is a pure function from typed parameters to a rendered
// prompt string; it performs no I/O (spec §4.1 "Prompts are pure
// functions... they perform no I/O").
type PromptHandler func(params map[string]string) (string, error)

// PromptArg describes one named prompt parameter.
type PromptArg struct {
	Name        string
	Description string
	Required    bool
}

// Prompt is the full descriptor for one MCP prompt.
type Prompt struct {
	Name        string
	Description string
	Args        []PromptArg
	Handler     PromptHandler
}

// PromptRegistry maps prompt name to descriptor.
type PromptRegistry struct {
	mu      sync.RWMutex
	prompts map[string]Prompt
}

// NewPromptRegistry returns an empty registry.
func NewPromptRegistry() *PromptRegistry {
	return &PromptRegistry{prompts: make(map[string]Prompt)}
}

// Register adds p to the registry, rejecting a duplicate name.
func (r *PromptRegistry) Register(p Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.prompts[p.Name]; exists {
		return fmt.Errorf("registry: duplicate prompt registration: %q", p.Name)
	}
	r.prompts[p.Name] = p
	return nil
}

// Get looks up a prompt descriptor by name.
func (r *PromptRegistry) Get(name string) (Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prompts[name]
	if !ok {
		return Prompt{}, taigaerr.Newf(taigaerr.NotFound, "unknown prompt %q", name)
	}
	return p, nil
}

// Render validates params against p's declared args (required-ness only —
// prompt parameters are always strings) and renders it.
func (p Prompt) Render(params map[string]string) (string, error) {
	for _, a := range p.Args {
		if a.Required {
			if v, ok := params[a.Name]; !ok || v == "" {
				return "", taigaerr.New(taigaerr.InvalidInput, "missing required prompt argument").WithField(a.Name)
			}
		}
	}
	return p.Handler(params)
}

// List returns all registered prompts sorted by name.
func (r *PromptRegistry) List() []Prompt {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports the number of registered prompts.
func (r *PromptRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}
