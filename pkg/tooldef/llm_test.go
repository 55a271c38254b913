package tooldef

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestToLLMToolFailsWhenFrameworkAbsent(t *testing.T) {
	prev := SetLLMFramework(nil)
	defer SetLLMFramework(prev)

	_, err := Define("t", nil).ToLLMTool()

	var loadErr *LoadConfigurationError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadConfigurationError, got %v", err)
	}
	if loadErr.Framework != FrameworkLLM {
		t.Errorf("Framework = %q, want %q", loadErr.Framework, FrameworkLLM)
	}
}

func TestToLLMToolSucceedsWhenFrameworkPresent(t *testing.T) {
	d := Define("greeting_tool", func(d *ToolDefinition) {
		d.Describe("Greets people")
		d.Param("name", WithDescription("Who to greet"))
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	param := lt.Param()
	if param.Name != "greeting_tool" {
		t.Errorf("Name = %q", param.Name)
	}
	if param.Description.Value != "Greets people" {
		t.Errorf("Description = %q", param.Description.Value)
	}
}

func TestToLLMToolSnapshotsDescription(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Describe("before")
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	d.Describe("after")
	if lt.Param().Description.Value != "before" {
		t.Errorf("materialized description changed after adaptation: %q", lt.Param().Description.Value)
	}
}

func TestToLLMToolSchemaForwardsTypeAndDescriptionOnly(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Param("name", WithDescription("Who to greet"))
		d.Param("count", OfType(ParamTypeInteger), Optional(), WithDefault(1))
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	props, ok := lt.Param().InputSchema.Properties.(orderedProperties)
	if !ok {
		t.Fatalf("Properties is %T", lt.Param().InputSchema.Properties)
	}

	raw, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	keys := propertyOrder(t, raw)
	if len(keys) != 2 || keys[0] != "name" || keys[1] != "count" {
		t.Errorf("property order = %v, want [name count]", keys)
	}

	// The required flags and the default are not part of this adapter's
	// declaration.
	for _, forbidden := range []string{"required", "default"} {
		if strings.Contains(string(raw), forbidden) {
			t.Errorf("declaration leaked %q: %s", forbidden, raw)
		}
	}
}

func TestLLMToolExecuteReturnsRawValue(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Execute(func(hc *HelperContext, args map[string]any) (any, error) {
			return map[string]any{"n": 5}, nil
		})
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	out, err := lt.Execute(nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok || m["n"] != 5 {
		t.Errorf("result = %#v, want the raw map", out)
	}
}

func TestLLMToolHelperReachability(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Helper("shout", func(hc *HelperContext, args ...any) (any, error) {
			return "HI", nil
		})
		d.ClassHelper("brand", func(args ...any) (any, error) {
			return "toolforge", nil
		})
		d.Execute(func(hc *HelperContext, args map[string]any) (any, error) {
			greeting, err := hc.Call("shout")
			if err != nil {
				return nil, err
			}
			brand, err := hc.Static("brand")
			if err != nil {
				return nil, err
			}
			return greeting.(string) + " from " + brand.(string), nil
		})
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	out, err := lt.Execute(nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "HI from toolforge" {
		t.Errorf("result = %v", out)
	}

	// Helpers are also reachable directly on the materialized unit.
	if v, err := lt.Helper("shout"); err != nil || v != "HI" {
		t.Errorf("Helper(shout) = (%v, %v)", v, err)
	}
	if v, err := lt.StaticHelper("brand"); err != nil || v != "toolforge" {
		t.Errorf("StaticHelper(brand) = (%v, %v)", v, err)
	}
}

func TestLLMToolInstanceContextReusedAcrossCalls(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Helper("bump", func(hc *HelperContext, args ...any) (any, error) {
			n := 0
			if v, ok := hc.Get("count"); ok {
				n = v.(int)
			}
			n++
			hc.Set("count", n)
			return n, nil
		})
		d.Execute(func(hc *HelperContext, args map[string]any) (any, error) {
			return hc.Call("bump")
		})
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	for want := 1; want <= 2; want++ {
		out, err := lt.Execute(map[string]any{"round": want})
		if err != nil {
			t.Fatalf("Execute %d failed: %v", want, err)
		}
		if out != want {
			t.Errorf("call %d = %v, want %d (instance state must persist)", want, out, want)
		}
	}

	// A second materialization gets its own context.
	lt2, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("second ToLLMTool failed: %v", err)
	}
	out, err := lt2.Execute(nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != 1 {
		t.Errorf("fresh materialization saw count %v, want 1", out)
	}
}

func TestLLMToolExecuteJSON(t *testing.T) {
	d := Define("t", func(d *ToolDefinition) {
		d.Execute(func(hc *HelperContext, args map[string]any) (any, error) {
			return "Hello, " + args["name"].(string) + "!", nil
		})
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	out, err := lt.ExecuteJSON(json.RawMessage(`{"name":"Alice"}`))
	if err != nil {
		t.Fatalf("ExecuteJSON failed: %v", err)
	}
	if out != "Hello, Alice!" {
		t.Errorf("result = %v", out)
	}
}

func TestLLMToolExecuteErrorPropagates(t *testing.T) {
	sentinel := errors.New("exec failed")
	d := Define("t", func(d *ToolDefinition) {
		d.Execute(func(hc *HelperContext, args map[string]any) (any, error) {
			return nil, sentinel
		})
	})

	lt, err := d.ToLLMTool()
	if err != nil {
		t.Fatalf("ToLLMTool failed: %v", err)
	}

	if _, err := lt.Execute(nil); !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want the execute block's own error", err)
	}
}
