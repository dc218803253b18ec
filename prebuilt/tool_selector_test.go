package prebuilt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prateek-Kumar98217/langraph-test/message"
)

func toolTurn(text string) ToolState {
	return ToolState{Messages: []message.Message{message.NewUser(text)}}
}

func TestNormalizeSelection(t *testing.T) {
	tests := map[string]string{
		"calculator":                 SelectCalculator,
		"  Weather\n":                SelectWeather,
		"'none'":                     SelectNone,
		"calculator.":                SelectCalculator,
		"I would use the calculator": SelectCalculator,
		"calculator or weather":      SelectNone,
		"search":                     SelectNone,
		"":                           SelectNone,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSelection(in), in)
	}
}

func TestToolSelector_Calculator(t *testing.T) {
	model := NewMockLLMWithText("calculator")
	app, err := CreateToolSelector(model, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), toolTurn("what's 2+2"))
	require.NoError(t, err)
	assert.Equal(t, SelectCalculator, out.SelectedTool)
	assert.Equal(t, "what's 2+2", out.ToolInput)
	assert.Equal(t, "4", out.ToolOutput)
}

func TestToolSelector_Weather(t *testing.T) {
	model := &PromptModel{respond: func(string) string { return "Weather" }}
	app, err := CreateToolSelector(model, quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), toolTurn("Paris"))
	require.NoError(t, err)
	assert.Equal(t, SelectWeather, out.SelectedTool)
	assert.Equal(t, "the weather at location Paris is sunny and 25C", out.ToolOutput)

	prompts := model.Prompts()
	require.Len(t, prompts, 1)
	assert.Equal(t, SelectorPrompt("Paris"), prompts[0])
	assert.True(t, strings.HasPrefix(prompts[0], "the user said this: 'Paris'."))
}

func TestToolSelector_NoneEndsImmediately(t *testing.T) {
	formatted := false
	app, err := CreateToolSelector(NewMockLLMWithText("I don't know"), quiet(),
		WithFormatter(func(_ context.Context, s ToolState) (ToolState, error) {
			formatted = true
			return s, nil
		}))
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), toolTurn("tell me a joke"))
	require.NoError(t, err)
	assert.Equal(t, SelectNone, out.SelectedTool)
	assert.Empty(t, out.ToolOutput)
	assert.False(t, formatted)
}

func TestToolSelector_InvalidCalculation(t *testing.T) {
	app, err := CreateToolSelector(NewMockLLMWithText("calculator"), quiet())
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), toolTurn("compute the meaning of life"))
	require.NoError(t, err)
	assert.Equal(t, "Invalid calculation", out.ToolOutput)
}

func TestToolSelector_CustomFormatter(t *testing.T) {
	app, err := CreateToolSelector(NewMockLLMWithText("calculator"), quiet(),
		WithFormatter(func(_ context.Context, s ToolState) (ToolState, error) {
			s.ToolOutput = "The answer is " + s.ToolOutput
			return s, nil
		}))
	require.NoError(t, err)

	out, err := app.Invoke(context.Background(), toolTurn("6*7"))
	require.NoError(t, err)
	assert.Equal(t, "The answer is 42", out.ToolOutput)
}
