package tool

import "fmt"

// Registry is an immutable named collection of tools, built once at
// startup and injected into the HTTP and MCP layers.
type Registry struct {
	names []string
	tools map[string]Tool
}

// NewRegistry builds a registry from the given tools. Tool names must be
// non-empty and unique.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		names: make([]string, 0, len(tools)),
		tools: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		name := t.Definition().Name
		if name == "" {
			return nil, fmt.Errorf("tool has empty name")
		}
		if _, exists := r.tools[name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", name)
		}
		r.names = append(r.names, name)
		r.tools[name] = t
	}
	return r, nil
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.names))
	for i, name := range r.names {
		out[i] = r.tools[name]
	}
	return out
}

// Definitions returns all capability descriptors in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.names))
	for i, name := range r.names {
		out[i] = r.tools[name].Definition()
	}
	return out
}
