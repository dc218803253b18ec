package message

import (
	"errors"

	"github.com/google/uuid"
)

// Role identifies the author of a message.
type Role string

const (
	// RoleUser marks text typed by the person on the other side of the conversation.
	RoleUser Role = "user"
	// RoleAssistant marks LLM output, which may carry tool call requests.
	RoleAssistant Role = "assistant"
	// RoleTool marks the result of a single tool call.
	RoleTool Role = "tool"
)

// ErrMissingInput is returned when a node needs the latest message and the history is empty.
var ErrMissingInput = errors.New("no message found in state")

// ToolCall is a request, authored by the LLM, to invoke a tool with arguments.
type ToolCall struct {
	// ID is unique within the assistant message that carries the call.
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// Message is one entry of a conversation. Once merged into a state it is not modified.
type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// ToolCalls is only set on assistant messages.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID and Name are only set on tool messages.
	ToolCallID string `json:"tool_call_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// NewUser creates a user message.
func NewUser(content string) Message {
	return Message{ID: uuid.NewString(), Role: RoleUser, Content: content}
}

// NewAssistant creates an assistant message with optional tool calls.
func NewAssistant(content string, calls ...ToolCall) Message {
	return Message{ID: uuid.NewString(), Role: RoleAssistant, Content: content, ToolCalls: calls}
}

// NewTool creates the reply to a tool call.
func NewTool(callID, name, content string) Message {
	return Message{ID: uuid.NewString(), Role: RoleTool, Content: content, ToolCallID: callID, Name: name}
}

// HasToolCalls reports whether m is an assistant message requesting at least one tool.
func (m Message) HasToolCalls() bool {
	return m.Role == RoleAssistant && len(m.ToolCalls) > 0
}

// Last returns the most recent message.
func Last(msgs []Message) (Message, error) {
	if len(msgs) == 0 {
		return Message{}, ErrMissingInput
	}
	return msgs[len(msgs)-1], nil
}

// LastOfRole returns the most recent message written by role.
func LastOfRole(msgs []Message, role Role) (Message, error) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == role {
			return msgs[i], nil
		}
	}
	return Message{}, ErrMissingInput
}

// Merge folds updates into current the way a conversation grows: an update whose
// ID is already present replaces that message in place, everything else is
// appended in order. Messages without an ID get a fresh one. Neither input is modified.
func Merge(current, updates []Message) []Message {
	result := make([]Message, len(current), len(current)+len(updates))
	copy(result, current)

	index := make(map[string]int, len(result))
	for i, m := range result {
		if m.ID != "" {
			index[m.ID] = i
		}
	}

	for _, m := range updates {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if i, ok := index[m.ID]; ok {
			result[i] = m
			continue
		}
		index[m.ID] = len(result)
		result = append(result, m)
	}
	return result
}
