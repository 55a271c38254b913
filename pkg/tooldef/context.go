package tooldef

import "fmt"

// HelperContext is the object a tool's execute block runs against. Instance
// helpers are reachable through Call, class-scope helpers through Static,
// and Set/Get hold state scoped to this context.
//
// Helper tables are read from the definition on every dispatch, so all
// contexts of a definition share the same helpers; the state map is what
// makes one context distinct from another. The Anthropic adapter builds one
// context per materialized tool and reuses it across Execute calls; the MCP
// adapter builds a fresh one per call.
type HelperContext struct {
	def   *ToolDefinition
	state map[string]any
}

func newHelperContext(d *ToolDefinition) *HelperContext {
	return &HelperContext{
		def:   d,
		state: make(map[string]any),
	}
}

// Call dispatches an instance helper by name, passing this context through
// so the helper can reach per-invocation state and sibling helpers.
func (hc *HelperContext) Call(name string, args ...any) (any, error) {
	fn, ok := hc.def.helpers[name]
	if !ok {
		return nil, fmt.Errorf("tool %s: unknown helper %q", hc.def.name, name)
	}
	return fn(hc, args...)
}

// Static dispatches a class-scope helper by name. Class-scope helpers run
// without instance context.
func (hc *HelperContext) Static(name string, args ...any) (any, error) {
	fn, ok := hc.def.classHelpers[name]
	if !ok {
		return nil, fmt.Errorf("tool %s: unknown class helper %q", hc.def.name, name)
	}
	return fn(args...)
}

// Set stores a value in this context's state.
func (hc *HelperContext) Set(key string, value any) {
	hc.state[key] = value
}

// Get reads a value from this context's state.
func (hc *HelperContext) Get(key string) (any, bool) {
	v, ok := hc.state[key]
	return v, ok
}

// invoke runs the definition's execute block against the given context.
func (d *ToolDefinition) invoke(hc *HelperContext, args map[string]any) (any, error) {
	if d.execute == nil {
		return nil, fmt.Errorf("tool %s: no execute block declared", d.name)
	}
	return d.execute(hc, args)
}
