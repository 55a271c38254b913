// Package resultutil converts a tool execution's raw return value into the
// text payloads the host frameworks expect.
package resultutil

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mark3labs/mcp-go/mcp"
)

// Result wraps the raw return value of a tool's execute block.
type Result struct {
	Value any
}

// New creates a Result around a raw execution value.
func New(value any) *Result {
	return &Result{Value: value}
}

// Text encodes the value as a single text payload: strings pass through
// unchanged, maps and sequences are rendered as indented JSON, and
// everything else uses its default string conversion.
func (r *Result) Text() string {
	switch v := r.Value.(type) {
	case string:
		return v
	}

	switch reflect.ValueOf(r.Value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		data, err := json.MarshalIndent(r.Value, "", "  ")
		if err != nil {
			return fmt.Sprint(r.Value)
		}
		return string(data)
	default:
		return fmt.Sprint(r.Value)
	}
}

// ToMCPResult wraps the encoded text in a CallToolResult holding a single
// text content entry.
func (r *Result) ToMCPResult() *mcp.CallToolResult {
	return mcp.NewToolResultText(r.Text())
}
