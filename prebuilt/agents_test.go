package prebuilt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

func userInput(text string) ConversationState {
	return ConversationState{Messages: []message.Message{message.NewUser(text)}}
}

func TestCreateChatbot(t *testing.T) {
	model := NewMockLLMWithText("Hello! How can I help?")
	app, err := CreateChatbot(model, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), userInput("hi"))
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, message.RoleUser, out.Messages[0].Role)
	assert.Equal(t, "Hello! How can I help?", out.Messages[1].Content)

	require.Equal(t, 1, model.CallCount())
	assert.Empty(t, model.options[0].Tools)
}

func TestCreateChatbot_SystemPromptAndCallOptions(t *testing.T) {
	model := NewMockLLMWithText("ok")
	app, err := CreateChatbot(model, quiet(), WithSystemPrompt("be brief"), WithCallOptions(llms.WithTemperature(0.2)))
	require.NoError(t, err)

	_, err = app.Invoke(context.Background(), userInput("hi"))
	require.NoError(t, err)

	sent := model.calls[0]
	require.Len(t, sent, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, sent[0].Role)
	assert.Equal(t, 0.2, model.options[0].Temperature)
}

func TestCreateChatbot_ErrorKeepsHistory(t *testing.T) {
	model := NewMockLLM()
	model.err = errors.New("quota exceeded")
	app, err := CreateChatbot(model, quiet())
	require.NoError(t, err)

	in := userInput("hi")
	out, err := app.Invoke(context.Background(), in)
	var nodeErr *graph.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "chatbot", nodeErr.Node)
	assert.Equal(t, in.Messages, out.Messages)
}

func TestCreateToolAgent(t *testing.T) {
	reg := mustRegistry(t, tool.NewAddTwoNumbers(), tool.NewMultiplyTwoNumbers(), tool.NewFallbackMessage())
	model := NewMockLLM(
		toolCallChoice(fnCall("call_1", tool.AddTwoNumbersID, `{"number1": 30, "number2": 40}`)),
		llms.ContentChoice{Content: "30 + 40 = 70"},
	)

	app, err := CreateToolAgent(model, reg, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), userInput("add 30 and 40"))
	require.NoError(t, err)

	require.Len(t, out.Messages, 4)
	assert.Equal(t, message.RoleUser, out.Messages[0].Role)
	assert.True(t, out.Messages[1].HasToolCalls())
	assert.Equal(t, message.RoleTool, out.Messages[2].Role)
	assert.Equal(t, "call_1", out.Messages[2].ToolCallID)
	assert.Equal(t, "70", out.Messages[2].Content)
	assert.Equal(t, "30 + 40 = 70", out.Messages[3].Content)

	require.Equal(t, 2, model.CallCount())
	require.Len(t, model.options[0].Tools, 3)
	assert.Equal(t, tool.AddTwoNumbersID, model.options[0].Tools[0].Function.Name)

	second := model.calls[1]
	require.Len(t, second, 3)
	resp, ok := second[2].Parts[0].(llms.ToolCallResponse)
	require.True(t, ok)
	assert.Equal(t, "call_1", resp.ToolCallID)
	assert.Equal(t, "70", resp.Content)
}

func TestCreateToolAgent_NoToolCalls(t *testing.T) {
	reg := mustRegistry(t, tool.NewAddTwoNumbers())
	model := NewMockLLMWithText("just chatting")

	app, err := CreateToolAgent(model, reg, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), userInput("hello"))
	require.NoError(t, err)
	assert.Len(t, out.Messages, 2)
	assert.Equal(t, 1, model.CallCount())
}

func TestCreateToolAgent_FallbackReachesModel(t *testing.T) {
	broken := tool.NewFunctionTool("broken", "always fails", nil, func(context.Context, map[string]any) (any, error) {
		return nil, errors.New("down")
	})
	reg := mustRegistry(t, broken, tool.NewFallbackMessage())
	model := NewMockLLM(
		toolCallChoice(fnCall("c1", "broken", `{}`)),
		llms.ContentChoice{Content: "Sorry, that did not work."},
	)

	app, err := CreateToolAgent(model, reg, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), userInput("do the thing"))
	require.NoError(t, err)
	require.Len(t, out.Messages, 4)
	assert.Equal(t, tool.FallbackMessage, out.Messages[2].Content)
}

func TestCreateToolAgent_RecursionLimit(t *testing.T) {
	reg := mustRegistry(t, tool.NewAddTwoNumbers())
	model := NewMockLLM(toolCallChoice(fnCall("", tool.AddTwoNumbersID, `{"number1": 1, "number2": 1}`)))

	app, err := CreateToolAgent(model, reg, quiet(), WithMaxSteps(5))
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), userInput("loop forever"))
	assert.ErrorIs(t, err, graph.ErrRecursionLimit)
	assert.Len(t, out.Messages, 6)
}

func TestCreateToolAgent_EmptyRegistry(t *testing.T) {
	reg := mustRegistry(t)
	_, err := CreateToolAgent(NewMockLLMWithText("x"), reg, quiet())
	var cfgErr *graph.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, ErrEmptyRegistry)

	_, err = CreateToolAgent(NewMockLLMWithText("x"), nil, quiet())
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestChatbot_EmptyResponse(t *testing.T) {
	model := &emptyModel{}
	node := Chatbot(model, nil, quiet())
	_, err := node(context.Background(), userInput("hi"))
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = node(context.Background(), ConversationState{})
	assert.ErrorIs(t, err, message.ErrMissingInput)
}

type emptyModel struct{}

func (emptyModel) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{}, nil
}

func (emptyModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return "", nil
}
