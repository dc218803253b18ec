package graph

// Schema merges the value returned by a node into the current state.
// Each state type supplies its own merge rules, field by field.
type Schema[S any] interface {
	Update(current, update S) (S, error)
}

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc[S any] func(current, update S) (S, error)

// Update implements Schema.
func (f SchemaFunc[S]) Update(current, update S) (S, error) {
	return f(current, update)
}

// OverwriteSchema replaces the whole state with the node's result. It is the
// behaviour of a graph without a schema.
type OverwriteSchema[S any] struct{}

// Update implements Schema.
func (OverwriteSchema[S]) Update(_, update S) (S, error) {
	return update, nil
}
