// Package memory implements long-term conversational memory as a graph.
//
// The memory subgraph runs four nodes on every user turn:
//
//	retriever -> evaluator -> (store?) -> creator -> updater -> END
//	                        \-> END
//
// The Retriever embeds the latest message and loads the most similar stored
// facts into State.RelevantMemory. The Evaluator asks the model whether the
// message is worth remembering; only a reply containing "yes" counts. The
// Creator turns the message into the text to store and the Updater embeds and
// inserts it into the vector index.
//
//	sub, err := memory.NewSubgraph(model, embedder, index, memory.WithTopK(3))
//	out, err := sub.Invoke(ctx, memory.State{Messages: []message.Message{message.NewUser("My name is Alex")}})
//
// HashEmbedder is a dependency-free embedder for tests and offline runs.
package memory
