package tools

import (
	"context"
	"sort"
)

// Handler executes a tool call and returns a human-readable text result.
type Handler func(ctx context.Context, args map[string]interface{}) (string, error)

type registration struct {
	spec    Spec
	handler Handler
}

// Registry is a static catalog of tool specifications and their handlers.
type Registry struct {
	tools map[string]registration
}

// NewEmptyRegistry creates a registry with no tools registered.
func NewEmptyRegistry() *Registry {
	return &Registry{tools: make(map[string]registration)}
}

// Register adds a tool to the registry, replacing any previous registration
// under the same name.
func (r *Registry) Register(spec Spec, handler Handler) {
	r.tools[spec.Name] = registration{spec: spec, handler: handler}
}

// Get returns the handler registered under name.
func (r *Registry) Get(name string) (Handler, bool) {
	reg, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return reg.handler, true
}

// Specs returns all tool specifications in stable name order.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, 0, len(r.tools))
	for _, reg := range r.tools {
		specs = append(specs, reg.spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}
