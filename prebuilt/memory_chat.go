package prebuilt

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/memory"
	"github.com/Prateek-Kumar98217/langraph-test/message"
)

// WithRelevantMemory prefixes text with a bulleted "Relevant memory:" block.
// Without memories text is returned unchanged.
func WithRelevantMemory(memories []string, text string) string {
	if len(memories) == 0 {
		return text
	}
	var sb strings.Builder
	sb.WriteString("Relevant memory:\n")
	for i, m := range memories {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(m)
	}
	sb.WriteString("\n\n")
	sb.WriteString(text)
	return sb.String()
}

// CreateMemoryChatbot builds START -> memory -> chatbot -> END. The memory
// node runs memorySubgraph on the conversation; the chatbot then sees the
// latest user message with the recalled facts prepended. The stored history
// keeps the message as the user wrote it.
func CreateMemoryChatbot(model llms.Model, memorySubgraph *graph.Runnable[memory.State], opts ...Option) (*graph.Runnable[MemoryChatState], error) {
	o := newOptions(opts)

	chatbot := func(ctx context.Context, s MemoryChatState) (MemoryChatState, error) {
		last, err := message.Last(s.Messages)
		if err != nil {
			return s, err
		}
		history := append([]message.Message(nil), s.Messages...)
		prompted := last
		prompted.Content = WithRelevantMemory(s.RelevantMemory, last.Content)
		history[len(history)-1] = prompted
		o.logger.Debug("[Chatbot] Prompt to LLM:\n%s", prompted.Content)

		reply, err := generate(ctx, model, nil, history, o)
		if err != nil {
			return s, err
		}
		return MemoryChatState{Messages: []message.Message{reply}, RelevantMemory: s.RelevantMemory}, nil
	}

	g := graph.NewStateGraph[MemoryChatState]()
	g.SetSchema(MemoryChatSchema())
	graph.AddSubgraph(g, "memory", memorySubgraph,
		func(s MemoryChatState) memory.State {
			return memory.State{Messages: s.Messages}
		},
		func(s MemoryChatState, m memory.State) MemoryChatState {
			s.RelevantMemory = m.RelevantMemory
			return s
		})
	g.AddNode("chatbot", "Answer with recalled memory in the prompt", chatbot)

	g.AddEdge(graph.START, "memory")
	g.AddEdge("memory", "chatbot")
	g.AddEdge("chatbot", graph.END)

	return g.Compile(graph.WithMaxSteps(o.maxSteps), graph.WithLogger(o.logger))
}
