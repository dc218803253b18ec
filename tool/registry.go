package tool

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/xeipuuv/gojsonschema"
)

// Registry is a static set of tools keyed by name, built once at startup.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	tools   map[string]Tool
	schemas map[string]*gojsonschema.Schema
	order   []string
}

// NewRegistry validates and indexes tools. Names must be unique and non-empty,
// and every parameter schema must compile.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools:   make(map[string]Tool, len(tools)),
		schemas: make(map[string]*gojsonschema.Schema, len(tools)),
	}
	for _, t := range tools {
		if t == nil || strings.TrimSpace(t.Name()) == "" {
			return nil, fmt.Errorf("%w: tool without a name", ErrInvalidTool)
		}
		name := t.Name()
		if _, ok := r.tools[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, name)
		}
		params := t.Parameters()
		if params == nil {
			params = ObjectSchema(nil)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(params))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: parameter schema: %v", ErrInvalidTool, name, err)
		}
		r.tools[name] = t
		r.schemas[name] = schema
		r.order = append(r.order, name)
	}
	return r, nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.tools[name]
	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Validate checks args against the parameter schema of the named tool.
func (r *Registry) Validate(name string, args map[string]any) error {
	schema, ok := r.schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]any{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidArguments, name, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s: %s", ErrInvalidArguments, name, strings.Join(msgs, "; "))
	}
	return nil
}

// Definitions returns the registered tools in the form expected by llms.WithTools.
func (r *Registry) Definitions() []llms.Tool {
	if r == nil {
		return nil
	}
	defs := make([]llms.Tool, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}
