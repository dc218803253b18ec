package session

import (
	"slices"

	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/prebuilt"
)

// AppendConversation adds text as a user message to a chatbot or tool agent state.
func AppendConversation(s prebuilt.ConversationState, text string) prebuilt.ConversationState {
	s.Messages = append(slices.Clip(s.Messages), message.NewUser(text))
	return s
}

// AppendMemoryChat adds text as a user message to a memory chat state and
// clears the memory recalled for the previous turn.
func AppendMemoryChat(s prebuilt.MemoryChatState, text string) prebuilt.MemoryChatState {
	s.Messages = append(slices.Clip(s.Messages), message.NewUser(text))
	s.RelevantMemory = nil
	return s
}
