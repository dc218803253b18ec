package cli

import (
	"context"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/prebuilt"
	"github.com/Prateek-Kumar98217/langraph-test/session"
)

// StreamConversation returns a TurnFunc that streams app over a history kept
// in memory. After every node that added messages, the content of the newest
// one is emitted. A failed turn leaves the history as it was.
func StreamConversation(app *graph.Runnable[prebuilt.ConversationState]) TurnFunc {
	var history prebuilt.ConversationState
	return func(ctx context.Context, text string, emit func(string)) error {
		input := session.AppendConversation(history, text)
		seen := len(input.Messages)
		state := input
		for ev, err := range app.Stream(ctx, input) {
			if err != nil {
				return err
			}
			state = ev.State
			if len(state.Messages) > seen {
				seen = len(state.Messages)
				if last, err := message.Last(state.Messages); err == nil && last.Content != "" {
					emit(last.Content)
				}
			}
		}
		history = state
		return nil
	}
}

// SessionTurn returns a TurnFunc that runs turns of one conversation of m and
// emits the text reply extracts from the resulting state.
func SessionTurn[S any](m *session.Manager[S], id string, reply func(S) string) TurnFunc {
	m.Open(id)
	return func(ctx context.Context, text string, emit func(string)) error {
		state, err := m.Chat(ctx, id, text)
		if err != nil {
			return err
		}
		if r := reply(state); r != "" {
			emit(r)
		}
		return nil
	}
}

// LastReply returns the content of the newest assistant message.
func LastReply(msgs []message.Message) string {
	last, err := message.LastOfRole(msgs, message.RoleAssistant)
	if err != nil {
		return ""
	}
	return last.Content
}
