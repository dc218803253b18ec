package prebuilt

import (
	"context"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
)

// RouteMessages decides where a conversation goes after the chatbot: "tools"
// when the latest message is an assistant message requesting tools, END otherwise.
func RouteMessages(msgs []message.Message) (string, error) {
	last, err := message.Last(msgs)
	if err != nil {
		return "", err
	}
	if last.HasToolCalls() {
		return "tools", nil
	}
	return graph.END, nil
}

// RouteTools is RouteMessages as a graph router.
func RouteTools(_ context.Context, s ConversationState) (string, error) {
	return RouteMessages(s.Messages)
}
