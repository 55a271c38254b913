package tooldef

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// LLMTool is a ToolDefinition materialized for the Anthropic messages API.
// The declaration (description, parameters) is a snapshot taken at adapt
// time; the execute block and helpers are read live from the definition on
// every call. A single helper context is created per materialization and
// reused across Execute calls, so instance helpers keep their state for the
// lifetime of the tool.
type LLMTool struct {
	def   *ToolDefinition
	param anthropic.ToolParam
	hc    *HelperContext
}

// ToLLMTool materializes the definition as an Anthropic tool. It returns a
// LoadConfigurationError when the Anthropic binding is not loaded.
//
// Only each parameter's type and description are forwarded to the
// declaration; the required flags and defaults are not. ToMCPTool forwards
// the required list, this adapter deliberately does not.
func (d *ToolDefinition) ToLLMTool() (*LLMTool, error) {
	if llmFramework == nil {
		return nil, &LoadConfigurationError{
			Framework: FrameworkLLM,
			Hint:      "restore the binding with tooldef.SetLLMFramework(tooldef.DefaultLLMFramework()) before calling ToLLMTool",
		}
	}
	schema := anthropic.ToolInputSchemaParam{
		Properties: orderedProperties(d.Params()),
	}
	return &LLMTool{
		def:   d,
		param: llmFramework.NewToolParam(d.name, d.description, schema),
		hc:    newHelperContext(d),
	}, nil
}

// Name returns the tool's name.
func (t *LLMTool) Name() string {
	return t.def.name
}

// Param returns the tool declaration for the messages API.
func (t *LLMTool) Param() anthropic.ToolParam {
	return t.param
}

// UnionParam returns the declaration wrapped for MessageNewParams.Tools.
func (t *LLMTool) UnionParam() anthropic.ToolUnionParam {
	return anthropic.ToolUnionParam{OfTool: &t.param}
}

// Execute runs the execute block with the given arguments and returns its
// raw, unconverted result. Errors from the block propagate unwrapped.
func (t *LLMTool) Execute(args map[string]any) (any, error) {
	return t.def.invoke(t.hc, args)
}

// ExecuteJSON decodes a JSON argument payload, as delivered in a tool use
// block, and runs Execute with it.
func (t *LLMTool) ExecuteJSON(input json.RawMessage) (any, error) {
	args := make(map[string]any)
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return nil, fmt.Errorf("tool %s: decode arguments: %w", t.def.name, err)
		}
	}
	return t.Execute(args)
}

// Helper invokes an instance helper by name on this tool's context.
func (t *LLMTool) Helper(name string, args ...any) (any, error) {
	return t.hc.Call(name, args...)
}

// StaticHelper invokes a class-scope helper by name.
func (t *LLMTool) StaticHelper(name string, args ...any) (any, error) {
	return t.hc.Static(name, args...)
}
