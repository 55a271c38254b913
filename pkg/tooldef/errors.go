package tooldef

import "fmt"

// Framework names used in LoadConfigurationError.
const (
	FrameworkLLM = "anthropic"
	FrameworkMCP = "mcp"
)

// LoadConfigurationError is returned by an adapter when the target
// framework's binding is not loaded. It is the only error kind raised by
// this package itself; errors from execute blocks and helpers propagate
// unwrapped.
type LoadConfigurationError struct {
	Framework string
	Hint      string
}

func (e *LoadConfigurationError) Error() string {
	return fmt.Sprintf("%s framework is not loaded: %s", e.Framework, e.Hint)
}
