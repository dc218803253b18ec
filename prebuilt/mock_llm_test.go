package prebuilt

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// MockLLM replays scripted choices, repeating the last one when it runs out.
type MockLLM struct {
	mu        sync.Mutex
	responses []llms.ContentChoice
	err       error
	calls     [][]llms.MessageContent
	options   []llms.CallOptions
}

func NewMockLLM(responses ...llms.ContentChoice) *MockLLM {
	return &MockLLM{responses: responses}
}

func NewMockLLMWithText(replies ...string) *MockLLM {
	choices := make([]llms.ContentChoice, len(replies))
	for i, r := range replies {
		choices[i] = llms.ContentChoice{Content: r}
	}
	return NewMockLLM(choices...)
}

func (m *MockLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var opts llms.CallOptions
	for _, o := range options {
		o(&opts)
	}
	m.calls = append(m.calls, messages)
	m.options = append(m.options, opts)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, errors.New("no scripted response")
	}
	idx := min(len(m.calls)-1, len(m.responses)-1)
	choice := m.responses[idx]
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{&choice}}, nil
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// PromptModel answers single prompts with a function of the prompt text.
type PromptModel struct {
	mu      sync.Mutex
	respond func(prompt string) string
	prompts []string
}

func (m *PromptModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	var sb strings.Builder
	if len(messages) > 0 {
		for _, p := range messages[len(messages)-1].Parts {
			if text, ok := p.(llms.TextContent); ok {
				sb.WriteString(text.Text)
			}
		}
	}
	m.mu.Lock()
	m.prompts = append(m.prompts, sb.String())
	m.mu.Unlock()
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.respond(sb.String())}}}, nil
}

func (m *PromptModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func (m *PromptModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func toolCallChoice(calls ...llms.ToolCall) llms.ContentChoice {
	return llms.ContentChoice{ToolCalls: calls}
}

func fnCall(id, name, args string) llms.ToolCall {
	return llms.ToolCall{ID: id, Type: "function", FunctionCall: &llms.FunctionCall{Name: name, Arguments: args}}
}
