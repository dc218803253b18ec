package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"(2+3)*4", 20},
		{"-3 + 10", 7},
		{"7/2", 3.5},
		{"10 % 4", 2},
		{"1.5*2", 3},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestEvaluate_Rejects(t *testing.T) {
	for _, expr := range []string{
		"",
		"1/0",
		"os.Exit(1)",
		"x + 1",
		`"a" + "b"`,
		"2 ** 3",
		"1 << 4",
		"2 +",
	} {
		_, err := Evaluate(expr)
		assert.Error(t, err, expr)
	}
}

func TestExtractExpression(t *testing.T) {
	assert.Equal(t, "2+2", ExtractExpression("what's 2+2"))
	assert.Equal(t, "(3 + 4) * 2", ExtractExpression("compute (3 + 4) * 2 please"))
	assert.Equal(t, "", ExtractExpression("no numbers here - sorry"))
	assert.Equal(t, "", ExtractExpression("I have 3 apples and 4 pears"))
	assert.Equal(t, "", ExtractExpression("what is 10 divided by 2"))
	assert.Equal(t, "", ExtractExpression("42"))
}

func TestCalculate(t *testing.T) {
	assert.Equal(t, "4", Calculate("what's 2+2"))
	assert.Equal(t, "3.5", Calculate("7/2"))
	assert.Equal(t, InvalidCalculation, Calculate("what's the weather"))
	assert.Equal(t, InvalidCalculation, Calculate("divide 1/0"))
	assert.Equal(t, InvalidCalculation, Calculate("I have 3 apples and 4 pears"))
	assert.Equal(t, InvalidCalculation, Calculate("what is 10 divided by 2"))
	assert.Equal(t, InvalidCalculation, Calculate("room 101"))
}

func TestCalculatorTool(t *testing.T) {
	v, err := NewCalculator().Call(context.Background(), map[string]any{"expression": "6*7"})
	require.NoError(t, err)
	out, err := FormatResult(v)
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestWeatherReport(t *testing.T) {
	assert.Equal(t, "the weather at location Paris is sunny and 25C", WeatherReport("Paris"))
}
