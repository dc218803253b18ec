package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

var twoNumbers = ObjectSchema([]Property{
	{Name: "number1", Type: "number", Description: "first operand", Required: true},
	{Name: "number2", Type: "number", Description: "second operand", Required: true},
})

// NewAddTwoNumbers returns the add_two_numbers tool.
func NewAddTwoNumbers() Tool {
	return NewFunctionTool(AddTwoNumbersID, "Adds two numbers", twoNumbers,
		func(_ context.Context, args map[string]any) (any, error) {
			a, b, err := operands(args)
			if err != nil {
				return nil, err
			}
			return a + b, nil
		})
}

// NewMultiplyTwoNumbers returns the multiply_two_numbers tool.
func NewMultiplyTwoNumbers() Tool {
	return NewFunctionTool(MultiplyTwoNumbersID, "Multiplies two numbers", twoNumbers,
		func(_ context.Context, args map[string]any) (any, error) {
			a, b, err := operands(args)
			if err != nil {
				return nil, err
			}
			return a * b, nil
		})
}

func operands(args map[string]any) (float64, float64, error) {
	a, err := Float(args, "number1")
	if err != nil {
		return 0, 0, err
	}
	b, err := Float(args, "number2")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Float reads a numeric argument.
func Float(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q is not a number: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("argument %q has type %T, want number", key, v)
	}
}
