// Package graph is the execution engine behind every conversation flow in this module.
//
// A StateGraph[S] is built from named nodes sharing a state of type S. Each node
// has exactly one outgoing route: a fixed edge, or a conditional edge whose router
// returns a label that is looked up in a path map. Execution is sequential: one
// node runs, its result is merged into the state by the graph's Schema, then the
// route is resolved, until END is reached.
//
// # Building and running
//
//	g := graph.NewStateGraph[State]()
//	g.SetSchema(schema)
//	g.AddNode("chatbot", "Calls the model", chatbot)
//	g.AddNode("tools", "Runs requested tools", tools)
//	g.AddEdge(graph.START, "chatbot")
//	g.AddConditionalEdge("chatbot", route, map[string]string{
//		"tools": "tools",
//		graph.END: graph.END,
//	})
//	g.AddEdge("tools", "chatbot")
//
//	app, err := g.Compile(graph.WithMaxSteps(25))
//	final, err := app.Invoke(ctx, input)
//
// Compile rejects graphs with a missing entry point, dangling edges or nodes
// without a route, returning *ConfigurationError values. At run time a node
// failure surfaces as *NodeError, an unmapped router label as *ConfigurationError
// and a runaway loop as ErrRecursionLimit. In every case the last committed state
// is returned alongside the error.
//
// # Extras
//
//   - Stream yields the state after each node as an iter.Seq2
//   - NodeListener and LoggingListener observe node execution
//   - AddSubgraph embeds a compiled graph with a different state type as one node
//   - Retry and WithTimeout bound flaky operations
//   - DrawMermaid renders the compiled graph
package graph
