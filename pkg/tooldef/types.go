// Package tooldef holds the framework-agnostic tool definition model and the
// adapters that materialize a definition as an Anthropic tool or an MCP tool.
package tooldef

// ParamType represents the type tag of a parameter. The set below covers the
// JSON schema primitives; unknown tags are stored and emitted verbatim.
type ParamType string

const (
	ParamTypeString  ParamType = "string"
	ParamTypeInteger ParamType = "integer"
	ParamTypeBoolean ParamType = "boolean"
	ParamTypeNumber  ParamType = "number"
	ParamTypeArray   ParamType = "array"
	ParamTypeObject  ParamType = "object"
)

// ParamSpec defines a tool parameter.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is carried in the model but never forwarded to a generated
	// schema; supplying defaults is the execute block's own business.
	Default any
}

// ExecuteFunc is a tool's execution block. It receives the helper context it
// runs against and the call arguments keyed by parameter name, and returns
// the raw result value.
type ExecuteFunc func(hc *HelperContext, args map[string]any) (any, error)

// HelperFunc is an instance-scoped helper. It receives the helper context of
// the invocation it runs in, giving it access to per-invocation state and to
// sibling helpers.
type HelperFunc func(hc *HelperContext, args ...any) (any, error)

// StaticHelperFunc is a class-scope helper. It runs without any instance
// context.
type StaticHelperFunc func(args ...any) (any, error)

// ToolDefinition is the canonical description of a tool: metadata, ordered
// parameters, one execute block, and two namespaces of helpers. Configure it
// once, then adapt it any number of times; adapters never mutate it.
type ToolDefinition struct {
	name           string
	description    string
	hasDescription bool
	params         []ParamSpec
	execute        ExecuteFunc
	helpers        map[string]HelperFunc
	classHelpers   map[string]StaticHelperFunc
}

// Define creates a ToolDefinition and runs the optional build function
// against it.
func Define(name string, build func(d *ToolDefinition)) *ToolDefinition {
	d := &ToolDefinition{
		name:         name,
		helpers:      make(map[string]HelperFunc),
		classHelpers: make(map[string]StaticHelperFunc),
	}
	if build != nil {
		build(d)
	}
	return d
}

// Name returns the tool's name.
func (d *ToolDefinition) Name() string {
	return d.name
}

// Describe sets the tool's description. Calling it again replaces the
// previous value.
func (d *ToolDefinition) Describe(text string) {
	d.description = text
	d.hasDescription = true
}

// Description returns the description and whether one has been set.
func (d *ToolDefinition) Description() (string, bool) {
	return d.description, d.hasDescription
}

// ParamOption configures a single parameter declaration.
type ParamOption func(*ParamSpec)

// OfType sets the parameter's type tag. The tag is not validated; an
// unrecognized tag surfaces untouched in generated schemas.
func OfType(t ParamType) ParamOption {
	return func(p *ParamSpec) {
		p.Type = t
	}
}

// WithDescription sets the parameter's description.
func WithDescription(text string) ParamOption {
	return func(p *ParamSpec) {
		p.Description = text
	}
}

// Optional marks the parameter as not required. Parameters are required
// unless declared otherwise.
func Optional() ParamOption {
	return func(p *ParamSpec) {
		p.Required = false
	}
}

// WithDefault attaches a default value to the parameter. The value is inert:
// adapters do not read it when building schemas and no substitution is
// performed at call time.
func WithDefault(v any) ParamOption {
	return func(p *ParamSpec) {
		p.Default = v
	}
}

// Param appends a parameter declaration. Declaration order is preserved and
// becomes declaration order in generated schemas. Names are not
// de-duplicated.
func (d *ToolDefinition) Param(name string, opts ...ParamOption) {
	p := ParamSpec{
		Name:     name,
		Type:     ParamTypeString,
		Required: true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	d.params = append(d.params, p)
}

// Params returns a copy of the parameter declarations in declaration order.
func (d *ToolDefinition) Params() []ParamSpec {
	out := make([]ParamSpec, len(d.params))
	copy(out, d.params)
	return out
}

// Execute stores the execution block, replacing any previous one.
func (d *ToolDefinition) Execute(fn ExecuteFunc) {
	d.execute = fn
}

// Helper registers an instance-scoped helper under the given name.
func (d *ToolDefinition) Helper(name string, fn HelperFunc) {
	d.helpers[name] = fn
}

// ClassHelper registers a class-scope helper under the given name.
func (d *ToolDefinition) ClassHelper(name string, fn StaticHelperFunc) {
	d.classHelpers[name] = fn
}
