package graph

import "time"

// StreamEvent is emitted by Runnable.Stream after each node commits its result.
type StreamEvent[S any] struct {
	// Step is the zero-based position of the node in this execution
	Step int

	// Node is the name of the node that just ran; empty on the terminal error event
	Node string

	// State is the committed state after the node ran
	State S

	// Timestamp when the event occurred
	Timestamp time.Time
}
