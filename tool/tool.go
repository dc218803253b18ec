package tool

import (
	"context"
	"errors"
	"fmt"
)

// Static identifiers of the built-in tools.
const (
	AddTwoNumbersID      = "add_two_numbers"
	MultiplyTwoNumbersID = "multiply_two_numbers"
	FallbackMessageID    = "fallback_message"
	WebSearchID          = "web_search"
	CalculatorID         = "calculator"
)

var (
	// ErrUnknownTool is returned when a tool call names a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool is returned when two tools share a name.
	ErrDuplicateTool = errors.New("duplicate tool name")

	// ErrInvalidTool is returned when a tool has no name or an unusable parameter schema.
	ErrInvalidTool = errors.New("invalid tool")

	// ErrInvalidArguments is returned when call arguments do not match the tool's schema.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Tool is a named capability the model can request.
type Tool interface {
	// Name is the identifier the model uses to request the tool.
	Name() string

	// Description tells the model what the tool does.
	Description() string

	// Parameters is the JSON schema of the arguments object.
	Parameters() map[string]any

	// Call executes the tool with already-validated arguments.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// InvocationError reports a failed tool attempt.
type InvocationError struct {
	Tool    string
	Attempt int
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("tool %s failed on attempt %d: %v", e.Tool, e.Attempt, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// FunctionTool adapts a Go function to Tool.
type FunctionTool struct {
	name        string
	description string
	parameters  map[string]any
	fn          func(ctx context.Context, args map[string]any) (any, error)
}

// NewFunctionTool creates a tool from a function. A nil parameters schema
// means the tool takes no arguments.
func NewFunctionTool(name, description string, parameters map[string]any, fn func(ctx context.Context, args map[string]any) (any, error)) *FunctionTool {
	if parameters == nil {
		parameters = ObjectSchema(nil)
	}
	return &FunctionTool{name: name, description: description, parameters: parameters, fn: fn}
}

// Name returns the name of the tool.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the description of the tool.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the argument schema of the tool.
func (t *FunctionTool) Parameters() map[string]any { return t.parameters }

// Call executes the tool.
func (t *FunctionTool) Call(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}

// Property describes one argument of an object schema.
type Property struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// ObjectSchema builds the JSON schema of an arguments object.
func ObjectSchema(props []Property) map[string]any {
	properties := make(map[string]any, len(props))
	required := make([]string, 0, len(props))
	for _, p := range props {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
