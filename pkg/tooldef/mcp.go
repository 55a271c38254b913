package tooldef

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/toolforge/toolforge/pkg/resultutil"
)

// ToMCPTool materializes the definition as an MCP server tool. It returns a
// LoadConfigurationError when the MCP binding is not loaded.
//
// The input schema is built once from the parameter declarations: properties
// in declaration order, plus a required list naming every parameter whose
// Required flag is set. Defaults are not forwarded.
//
// The handler builds a fresh helper context on every call, runs the live
// execute block against it, and encodes the raw result as a single text
// content entry. Errors from the execute block are returned as the handler's
// error, uncaught.
func (d *ToolDefinition) ToMCPTool() (server.ServerTool, error) {
	if mcpFramework == nil {
		return server.ServerTool{}, &LoadConfigurationError{
			Framework: FrameworkMCP,
			Hint:      "restore the binding with tooldef.SetMCPFramework(tooldef.DefaultMCPFramework()) before calling ToMCPTool",
		}
	}
	fw := mcpFramework

	rawSchema, err := d.rawInputSchema()
	if err != nil {
		return server.ServerTool{}, err
	}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hc := newHelperContext(d)
		out, err := d.invoke(hc, req.GetArguments())
		if err != nil {
			return nil, err
		}
		return fw.NewTextResult(resultutil.New(out).Text()), nil
	}

	return server.ServerTool{
		Tool:    fw.NewTool(d.name, d.description, rawSchema),
		Handler: handler,
	}, nil
}
