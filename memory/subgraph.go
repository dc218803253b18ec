package memory

import (
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// NewSubgraph builds and compiles the retrieve, evaluate, create, update flow.
func NewSubgraph(model llms.Model, embedder embeddings.Embedder, index store.VectorIndex, opts ...Option) (*graph.Runnable[State], error) {
	o := newOptions(opts)

	g := graph.NewStateGraph[State]()
	g.SetSchema(Schema())

	g.AddNode("retriever", "Recall similar memories", NewRetriever(embedder, index, opts...).Node)
	g.AddNode("evaluator", "Decide whether to remember the message", NewEvaluator(model, opts...).Node)
	g.AddNode("creator", "Prepare the memory text", NewCreator(opts...).Node)
	g.AddNode("updater", "Store the memory", NewUpdater(embedder, index, opts...).Node)

	g.AddEdge(graph.START, "retriever")
	g.AddEdge("retriever", "evaluator")
	g.AddConditionalEdge("evaluator", RouteStore, map[string]string{
		"creator": "creator",
		"end":     graph.END,
	})
	g.AddEdge("creator", "updater")
	g.AddEdge("updater", graph.END)

	return g.Compile(graph.WithLogger(o.logger))
}
