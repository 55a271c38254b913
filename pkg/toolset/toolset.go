// Package toolset groups tool definitions and adapts them in bulk to the
// host frameworks.
package toolset

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mark3labs/mcp-go/server"

	"github.com/toolforge/toolforge/pkg/tooldef"
)

// HandlerMiddleware wraps a tool handler during MCP registration, e.g. for
// telemetry.
type HandlerMiddleware func(toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc

// Toolset is a named, ordered collection of tool definitions.
type Toolset struct {
	name        string
	description string
	defs        []*tooldef.ToolDefinition
	byName      map[string]*tooldef.ToolDefinition
}

// New creates an empty toolset.
func New(name string) *Toolset {
	return &Toolset{
		name:   name,
		byName: make(map[string]*tooldef.ToolDefinition),
	}
}

// Name returns the toolset's name.
func (t *Toolset) Name() string {
	return t.name
}

// Describe sets the toolset's description.
func (t *Toolset) Describe(text string) {
	t.description = text
}

// Description returns the toolset's description.
func (t *Toolset) Description() string {
	return t.description
}

// Add appends definitions in order. A later definition with an already-seen
// name wins lookups but both stay in the sequence.
func (t *Toolset) Add(defs ...*tooldef.ToolDefinition) *Toolset {
	for _, d := range defs {
		t.defs = append(t.defs, d)
		t.byName[d.Name()] = d
	}
	return t
}

// Get looks up a definition by name.
func (t *Toolset) Get(name string) (*tooldef.ToolDefinition, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Definitions returns the definitions in registration order.
func (t *Toolset) Definitions() []*tooldef.ToolDefinition {
	out := make([]*tooldef.ToolDefinition, len(t.defs))
	copy(out, t.defs)
	return out
}

// RegisterMCP adapts every definition and adds it to the MCP server.
// Middleware wraps each handler in order, outermost first.
func (t *Toolset) RegisterMCP(srv *server.MCPServer, middleware ...HandlerMiddleware) error {
	for _, d := range t.defs {
		st, err := d.ToMCPTool()
		if err != nil {
			return err
		}
		handler := st.Handler
		for i := len(middleware) - 1; i >= 0; i-- {
			handler = middleware[i](d.Name(), handler)
		}
		srv.AddTool(st.Tool, handler)
	}
	return nil
}

// LLMTools adapts every definition for the Anthropic messages API.
func (t *Toolset) LLMTools() ([]*tooldef.LLMTool, error) {
	out := make([]*tooldef.LLMTool, 0, len(t.defs))
	for _, d := range t.defs {
		lt, err := d.ToLLMTool()
		if err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, nil
}

// ToolParams adapts every definition and returns the declarations in the
// shape MessageNewParams.Tools expects.
func (t *Toolset) ToolParams() ([]anthropic.ToolUnionParam, error) {
	tools, err := t.LLMTools()
	if err != nil {
		return nil, err
	}
	params := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, lt := range tools {
		params = append(params, lt.UnionParam())
	}
	return params, nil
}
