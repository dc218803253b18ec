package prebuilt

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

// ErrEmptyResponse is returned when the model answers without any choice.
var ErrEmptyResponse = errors.New("empty response from model")

// generate sends history to the model and returns its reply as an assistant message.
// Tools of reg, when non-empty, are bound to the call.
func generate(ctx context.Context, model llms.Model, reg *tool.Registry, history []message.Message, o options) (message.Message, error) {
	content, err := message.ToMessageContent(history)
	if err != nil {
		return message.Message{}, err
	}
	if o.systemPrompt != "" {
		content = append([]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeSystem, o.systemPrompt)}, content...)
	}

	callOpts := append([]llms.CallOption(nil), o.callOptions...)
	if reg.Len() > 0 {
		callOpts = append(callOpts, llms.WithTools(reg.Definitions()))
	}

	resp, err := graph.WithTimeout(ctx, o.callTimeout, func(ctx context.Context) (*llms.ContentResponse, error) {
		return model.GenerateContent(ctx, content, callOpts...)
	})
	if err != nil {
		return message.Message{}, fmt.Errorf("model call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return message.Message{}, ErrEmptyResponse
	}
	return message.FromChoice(resp.Choices[0]), nil
}

// Chatbot returns a node that sends the conversation to the model and appends
// its reply. With a non-empty registry the tools are offered to the model and
// the reply may carry tool calls. The call is not retried.
func Chatbot(model llms.Model, reg *tool.Registry, opts ...Option) graph.NodeFunc[ConversationState] {
	o := newOptions(opts)
	return func(ctx context.Context, s ConversationState) (ConversationState, error) {
		if len(s.Messages) == 0 {
			return s, message.ErrMissingInput
		}
		reply, err := generate(ctx, model, reg, s.Messages, o)
		if err != nil {
			return s, err
		}
		if reply.HasToolCalls() {
			names := make([]string, len(reply.ToolCalls))
			for i, c := range reply.ToolCalls {
				names[i] = c.Name
			}
			o.logger.Info("[Chatbot] Requested tools: %v", names)
		} else {
			o.logger.Debug("[Chatbot] Replied: %s", reply.Content)
		}
		return ConversationState{Messages: []message.Message{reply}}, nil
	}
}
