package message

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// ToMessageContent converts a conversation into the langchaingo request format.
func ToMessageContent(msgs []Message) ([]llms.MessageContent, error) {
	out := make([]llms.MessageContent, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleUser:
			out = append(out, llms.TextParts(llms.ChatMessageTypeHuman, m.Content))
		case RoleAssistant:
			mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
			if m.Content != "" {
				mc.Parts = append(mc.Parts, llms.TextPart(m.Content))
			}
			for _, tc := range m.ToolCalls {
				args, err := json.Marshal(tc.Args)
				if err != nil {
					return nil, fmt.Errorf("failed to encode arguments of tool call %s: %w", tc.ID, err)
				}
				mc.Parts = append(mc.Parts, llms.ToolCall{
					ID:   tc.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      tc.Name,
						Arguments: string(args),
					},
				})
			}
			out = append(out, mc)
		case RoleTool:
			out = append(out, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: m.ToolCallID,
						Name:       m.Name,
						Content:    m.Content,
					},
				},
			})
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}
	return out, nil
}

// FromChoice builds an assistant message from the first choice of a model response.
// Tool call arguments that are not a JSON object become an empty map so that
// argument validation in the tool node reports them.
func FromChoice(choice *llms.ContentChoice) Message {
	msg := NewAssistant(choice.Content)
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		call := ToolCall{ID: tc.ID, Name: tc.FunctionCall.Name}
		if call.ID == "" {
			call.ID = "call_" + uuid.NewString()
		}
		if tc.FunctionCall.Arguments != "" {
			var args map[string]any
			if err := json.Unmarshal([]byte(tc.FunctionCall.Arguments), &args); err == nil {
				call.Args = args
			}
		}
		if call.Args == nil {
			call.Args = map[string]any{}
		}
		msg.ToolCalls = append(msg.ToolCalls, call)
	}
	return msg
}
