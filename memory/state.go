package memory

import (
	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
)

// State flows through the memory subgraph.
type State struct {
	Messages []message.Message

	// RelevantMemory holds the facts recalled for the latest message.
	RelevantMemory []string

	// StructuredMemory is the text the creator prepared for storage.
	StructuredMemory string

	// Store is the evaluator's decision for the latest message.
	Store bool
}

// Schema merges messages by identity and overwrites every other field.
func Schema() graph.Schema[State] {
	return graph.SchemaFunc[State](func(current, update State) (State, error) {
		current.Messages = message.Merge(current.Messages, update.Messages)
		current.RelevantMemory = update.RelevantMemory
		current.StructuredMemory = update.StructuredMemory
		current.Store = update.Store
		return current, nil
	})
}
