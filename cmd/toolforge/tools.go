package main

import (
	"fmt"
	"time"

	"github.com/toolforge/toolforge/pkg/tooldef"
	"github.com/toolforge/toolforge/pkg/toolset"
)

// demoToolset builds the example tools this binary serves.
func demoToolset() *toolset.Toolset {
	ts := toolset.New("toolforge-demo")
	ts.Describe("Example tools declared with the toolforge definition DSL.")
	ts.Add(greetingTool(), calcTool(), serverTimeTool())
	return ts
}

func greetingTool() *tooldef.ToolDefinition {
	return tooldef.Define("greeting_tool", func(d *tooldef.ToolDefinition) {
		d.Describe("Greets a person by name.")
		d.Param("name",
			tooldef.WithDescription("Name of the person to greet"),
		)
		d.Param("formal",
			tooldef.OfType(tooldef.ParamTypeBoolean),
			tooldef.WithDescription("Use a formal salutation"),
			tooldef.Optional(),
		)
		d.Helper("salutation", func(hc *tooldef.HelperContext, args ...any) (any, error) {
			if len(args) > 0 {
				if formal, _ := args[0].(bool); formal {
					return "Good day", nil
				}
			}
			return "Hello", nil
		})
		d.ClassHelper("signature", func(args ...any) (any, error) {
			return "— toolforge", nil
		})
		d.Execute(func(hc *tooldef.HelperContext, args map[string]any) (any, error) {
			formal, _ := args["formal"].(bool)
			salutation, err := hc.Call("salutation", formal)
			if err != nil {
				return nil, err
			}
			signature, err := hc.Static("signature")
			if err != nil {
				return nil, err
			}
			return fmt.Sprintf("%s, %v! %v", salutation, args["name"], signature), nil
		})
	})
}

func calcTool() *tooldef.ToolDefinition {
	return tooldef.Define("calc", func(d *tooldef.ToolDefinition) {
		d.Describe("Performs basic arithmetic on two numbers.")
		d.Param("a", tooldef.OfType(tooldef.ParamTypeNumber), tooldef.WithDescription("First operand"))
		d.Param("b", tooldef.OfType(tooldef.ParamTypeNumber), tooldef.WithDescription("Second operand"))
		d.Param("op",
			tooldef.WithDescription("Operation: add, sub, mul, div"),
			tooldef.Optional(),
			tooldef.WithDefault("add"),
		)
		d.Execute(func(hc *tooldef.HelperContext, args map[string]any) (any, error) {
			a, _ := args["a"].(float64)
			b, _ := args["b"].(float64)
			op, _ := args["op"].(string)
			switch op {
			case "", "add":
				return a + b, nil
			case "sub":
				return a - b, nil
			case "mul":
				return a * b, nil
			case "div":
				if b == 0 {
					return nil, fmt.Errorf("calc: division by zero")
				}
				return a / b, nil
			default:
				return nil, fmt.Errorf("calc: unknown operation %q", op)
			}
		})
	})
}

func serverTimeTool() *tooldef.ToolDefinition {
	return tooldef.Define("server_time", func(d *tooldef.ToolDefinition) {
		d.Describe("Returns the server's current time.")
		d.Execute(func(hc *tooldef.HelperContext, args map[string]any) (any, error) {
			return map[string]any{
				"rfc3339": time.Now().Format(time.RFC3339),
				"unix":    time.Now().Unix(),
			}, nil
		})
	})
}
