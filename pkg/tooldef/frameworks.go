package tooldef

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mark3labs/mcp-go/mcp"
)

// LLMFramework is the binding to the Anthropic tool declaration surface.
// Adapters consult the package-level binding at adapt time; a nil binding
// means the framework is not loaded.
type LLMFramework struct {
	// NewToolParam builds the class-level tool declaration.
	NewToolParam func(name, description string, schema anthropic.ToolInputSchemaParam) anthropic.ToolParam
}

// MCPFramework is the binding to the MCP tool declaration surface.
type MCPFramework struct {
	// NewTool builds the tool declaration from a pre-built raw input schema.
	NewTool func(name, description string, rawSchema json.RawMessage) mcp.Tool
	// NewTextResult wraps an encoded result string in a single text content
	// entry.
	NewTextResult func(text string) *mcp.CallToolResult
}

var (
	llmFramework = DefaultLLMFramework()
	mcpFramework = DefaultMCPFramework()
)

// DefaultLLMFramework returns the binding backed by the Anthropic SDK.
func DefaultLLMFramework() *LLMFramework {
	return &LLMFramework{
		NewToolParam: func(name, description string, schema anthropic.ToolInputSchemaParam) anthropic.ToolParam {
			p := anthropic.ToolParam{
				Name:        name,
				InputSchema: schema,
			}
			if description != "" {
				p.Description = anthropic.String(description)
			}
			return p
		},
	}
}

// DefaultMCPFramework returns the binding backed by mcp-go.
func DefaultMCPFramework() *MCPFramework {
	return &MCPFramework{
		NewTool: func(name, description string, rawSchema json.RawMessage) mcp.Tool {
			tool := mcp.NewTool(name, mcp.WithDescription(description))
			// The schema is passed whole; clear the structured field so the
			// raw one is authoritative.
			tool.InputSchema = mcp.ToolInputSchema{}
			tool.RawInputSchema = rawSchema
			return tool
		},
		NewTextResult: mcp.NewToolResultText,
	}
}

// SetLLMFramework replaces the Anthropic binding and returns the previous
// one. Passing nil marks the framework as not loaded.
func SetLLMFramework(f *LLMFramework) *LLMFramework {
	prev := llmFramework
	llmFramework = f
	return prev
}

// SetMCPFramework replaces the MCP binding and returns the previous one.
// Passing nil marks the framework as not loaded.
func SetMCPFramework(f *MCPFramework) *MCPFramework {
	prev := mcpFramework
	mcpFramework = f
	return prev
}
