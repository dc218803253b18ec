package graph

import "context"

const (
	// START names the virtual node every execution begins from.
	// AddEdge(START, x) is equivalent to SetEntryPoint(x).
	START = "START"

	// END is the terminal marker; resolving it stops execution.
	END = "END"
)

// DefaultMaxSteps bounds how many nodes one invocation may run before it is
// aborted with ErrRecursionLimit.
const DefaultMaxSteps = 25

// NodeFunc is the unit of work of a graph. It receives the full current state
// and returns the state it wants to commit; the graph's Schema merges the
// returned value into the current state.
type NodeFunc[S any] func(ctx context.Context, state S) (S, error)

// Router resolves a conditional edge. It returns a label that is looked up in
// the edge's path map.
type Router[S any] func(ctx context.Context, state S) (string, error)

// Node represents a node in the graph.
type Node[S any] struct {
	// Name is the unique identifier for the node.
	Name string

	// Description describes the functionality of the node.
	Description string

	// Function is the work performed by the node.
	Function NodeFunc[S]
}

// ConditionalEdge is a transition whose target is chosen at run time.
type ConditionalEdge[S any] struct {
	From    string
	Router  Router[S]
	PathMap map[string]string
}
