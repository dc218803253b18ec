// Package langraph wires LLM calls into directed conversation graphs, with
// tool calling and vector-similarity memory.
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/Prateek-Kumar98217/langraph-test/message"
//		"github.com/Prateek-Kumar98217/langraph-test/prebuilt"
//		"github.com/Prateek-Kumar98217/langraph-test/tool"
//		"github.com/tmc/langchaingo/llms/openai"
//	)
//
//	func main() {
//		llm, _ := openai.New()
//		reg, _ := tool.NewRegistry(tool.NewAddTwoNumbers(), tool.NewFallbackMessage())
//
//		agent, _ := prebuilt.CreateToolAgent(llm, reg)
//		out, err := agent.Invoke(context.Background(), prebuilt.ConversationState{
//			Messages: []message.Message{message.NewUser("what is 30 plus 40?")},
//		})
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(out.Messages[len(out.Messages)-1].Content)
//	}
//
// # Core Concepts
//
// A graph.StateGraph holds named nodes that read and return a typed state.
// Exactly one node runs at a time. After a node finishes, its fixed edge or
// its router picks the next node, until END is reached. A Schema merges
// every node's result into the running state; conversation states merge
// messages by ID so that nodes only return what they add.
//
// Compile validates the wiring and reports every mistake at once. A compiled
// Runnable can be invoked, streamed node by node, embedded into another
// graph with graph.AddSubgraph, or rendered as a Mermaid diagram.
//
// # Package Structure
//
//	graph/     builder, executor, schema, retry and timeout helpers, listeners
//	message/   conversation messages and langchaingo conversion
//	tool/      tool contract, validated registry, math, calculator, Tavily search
//	prebuilt/  chatbot, tool agent, tool selector and memory chat graphs
//	memory/    retriever, evaluator, creator and updater nodes, memory subgraph
//	store/     vector index contract with in-memory, Redis, SQLite and Postgres backends
//	session/   per-conversation history and parallel batches
//	config/    environment loading and the factory for models, embedders and indexes
//	log/       logger interface with stdlib, golog and zerolog backends
//	cli/       interactive loop used by the example programs
//
// # Tools
//
// The tool agent binds a tool.Registry to the model. Every requested call is
// validated against the tool's JSON schema and tried twice. When both
// attempts fail, the registry's fallback_message tool answers instead, so
// the model always receives one result per call.
//
// # Memory
//
// The memory subgraph recalls the facts closest to the latest user message,
// asks the model whether the message is worth remembering and stores it
// when the answer is yes. prebuilt.CreateMemoryChatbot runs it before every
// reply and shows the recalled facts to the model.
//
// # Configuration
//
// The example programs read their settings from the environment and an
// optional .env file. See config.Config for the variables and defaults.
package langraph
