package prebuilt

import (
	"errors"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

// ErrEmptyRegistry is returned when a tool agent is built without tools.
var ErrEmptyRegistry = errors.New("tool registry is empty")

// CreateChatbot builds START -> chatbot -> END.
func CreateChatbot(model llms.Model, opts ...Option) (*graph.Runnable[ConversationState], error) {
	o := newOptions(opts)

	g := graph.NewStateGraph[ConversationState]()
	g.SetSchema(ConversationSchema())
	g.AddNode("chatbot", "Answer with the model", Chatbot(model, nil, opts...))
	g.AddEdge(graph.START, "chatbot")
	g.AddEdge("chatbot", graph.END)

	return g.Compile(graph.WithMaxSteps(o.maxSteps), graph.WithLogger(o.logger))
}

// CreateToolAgent builds a chatbot bound to the tools of reg. Whenever the
// model requests tools, the tool node answers and the chatbot runs again.
func CreateToolAgent(model llms.Model, reg *tool.Registry, opts ...Option) (*graph.Runnable[ConversationState], error) {
	if reg.Len() == 0 {
		return nil, &graph.ConfigurationError{Node: "tools", Err: ErrEmptyRegistry}
	}
	o := newOptions(opts)

	g := graph.NewStateGraph[ConversationState]()
	g.SetSchema(ConversationSchema())
	g.AddNode("chatbot", "Answer with the model, possibly requesting tools", Chatbot(model, reg, opts...))
	g.AddNode("tools", "Run the requested tools", NewToolNode(reg, opts...).Node)

	g.AddEdge(graph.START, "chatbot")
	g.AddConditionalEdge("chatbot", RouteTools, map[string]string{
		"tools":   "tools",
		graph.END: graph.END,
	})
	g.AddEdge("tools", "chatbot")

	return g.Compile(graph.WithMaxSteps(o.maxSteps), graph.WithLogger(o.logger))
}
