package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryPointNotSet is returned when the entry point of the graph is not set.
	ErrEntryPointNotSet = errors.New("entry point not set")

	// ErrNodeNotFound is returned when an edge references a node that does not exist.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNoOutgoingEdge is returned when a node has no way to continue.
	ErrNoOutgoingEdge = errors.New("no outgoing edge found for node")

	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("node already exists")

	// ErrDuplicateRoute is returned when a node is given more than one outgoing route.
	ErrDuplicateRoute = errors.New("node already has an outgoing route")

	// ErrReservedName is returned when a node is named START or END.
	ErrReservedName = errors.New("node name is reserved")

	// ErrUnknownLabel is returned when a router produces a label missing from its path map.
	ErrUnknownLabel = errors.New("router returned unknown label")

	// ErrRecursionLimit is returned when an execution runs more nodes than allowed.
	ErrRecursionLimit = errors.New("recursion limit reached")
)

// ConfigurationError reports a graph that is wired incorrectly. It is returned by
// Compile, and by Invoke when a router produces a label that has no target.
type ConfigurationError struct {
	Node string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("graph configuration: %v", e.Err)
	}
	return fmt.Sprintf("graph configuration: node %s: %v", e.Node, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NodeError is returned when a node or its router fails during execution.
type NodeError struct {
	Node string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("error in node %s: %v", e.Node, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}
