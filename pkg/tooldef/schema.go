package tooldef

import (
	"bytes"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// propertySchema builds the schema object for a single parameter. Only the
// type tag and the description are forwarded; Required travels separately in
// the MCP schema's required list and Default is never emitted.
func propertySchema(p ParamSpec) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type: string(p.Type),
	}
	if p.Description != "" {
		s.Description = p.Description
	}
	return s
}

// orderedProperties marshals parameter schemas as a JSON object keyed by
// parameter name, preserving declaration order. A map[string]*Schema would
// reorder keys on marshal.
type orderedProperties []ParamSpec

func (o orderedProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		prop, err := json.Marshal(propertySchema(p))
		if err != nil {
			return nil, err
		}
		buf.Write(prop)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// inputSchema is the single schema object handed to the MCP framework.
type inputSchema struct {
	Type       string            `json:"type"`
	Properties orderedProperties `json:"properties"`
	Required   []string          `json:"required,omitempty"`
}

func (d *ToolDefinition) rawInputSchema() (json.RawMessage, error) {
	var required []string
	for _, p := range d.params {
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return json.Marshal(inputSchema{
		Type:       "object",
		Properties: orderedProperties(d.Params()),
		Required:   required,
	})
}
