package prebuilt

import (
	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
)

// ConversationState is the state of the chatbot and tool agent graphs.
type ConversationState struct {
	Messages []message.Message `json:"messages"`
}

// ConversationSchema merges messages by identity.
func ConversationSchema() graph.Schema[ConversationState] {
	return graph.SchemaFunc[ConversationState](func(current, update ConversationState) (ConversationState, error) {
		current.Messages = message.Merge(current.Messages, update.Messages)
		return current, nil
	})
}

// ToolState is the state of the tool-selector graph. The scalar fields are
// overwritten by every node that returns them.
type ToolState struct {
	Messages     []message.Message `json:"messages"`
	SelectedTool string            `json:"selected_tool"`
	ToolInput    string            `json:"tool_input"`
	ToolOutput   string            `json:"tool_output"`
}

// ToolSchema merges messages by identity and overwrites the other fields.
func ToolSchema() graph.Schema[ToolState] {
	return graph.SchemaFunc[ToolState](func(current, update ToolState) (ToolState, error) {
		current.Messages = message.Merge(current.Messages, update.Messages)
		current.SelectedTool = update.SelectedTool
		current.ToolInput = update.ToolInput
		current.ToolOutput = update.ToolOutput
		return current, nil
	})
}

// MemoryChatState is the state of the memory chat graph.
type MemoryChatState struct {
	Messages       []message.Message `json:"messages"`
	RelevantMemory []string          `json:"relevant_memory"`
}

// MemoryChatSchema merges messages by identity and replaces the recalled memory.
func MemoryChatSchema() graph.Schema[MemoryChatState] {
	return graph.SchemaFunc[MemoryChatState](func(current, update MemoryChatState) (MemoryChatState, error) {
		current.Messages = message.Merge(current.Messages, update.Messages)
		current.RelevantMemory = update.RelevantMemory
		return current, nil
	})
}
