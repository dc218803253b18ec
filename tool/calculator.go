package tool

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// InvalidCalculation is the calculator's answer to anything it cannot evaluate.
const InvalidCalculation = "Invalid calculation"

var (
	errUnsupported  = errors.New("unsupported expression")
	errDivideByZero = errors.New("division by zero")

	arithmeticRun = regexp.MustCompile(`[0-9.+\-*/%()\s]+`)
)

// Evaluate computes an arithmetic expression made of numbers, + - * / %,
// unary signs and parentheses. Nothing else is accepted.
func Evaluate(expr string) (float64, error) {
	node, err := parser.ParseExpr(strings.TrimSpace(expr))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", expr, err)
	}
	v, err := eval(node)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q does not evaluate to a finite number", expr)
	}
	return v, nil
}

func eval(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return 0, fmt.Errorf("%w: literal %s", errUnsupported, n.Value)
		}
		return strconv.ParseFloat(n.Value, 64)
	case *ast.ParenExpr:
		return eval(n.X)
	case *ast.UnaryExpr:
		x, err := eval(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return -x, nil
		}
		return 0, fmt.Errorf("%w: unary %s", errUnsupported, n.Op)
	case *ast.BinaryExpr:
		x, err := eval(n.X)
		if err != nil {
			return 0, err
		}
		y, err := eval(n.Y)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ADD:
			return x + y, nil
		case token.SUB:
			return x - y, nil
		case token.MUL:
			return x * y, nil
		case token.QUO:
			if y == 0 {
				return 0, errDivideByZero
			}
			return x / y, nil
		case token.REM:
			if y == 0 {
				return 0, errDivideByZero
			}
			return math.Mod(x, y), nil
		}
		return 0, fmt.Errorf("%w: operator %s", errUnsupported, n.Op)
	}
	return 0, fmt.Errorf("%w: %T", errUnsupported, node)
}

// ExtractExpression returns the arithmetic run of text, so "what's 2+2?"
// yields "2+2". It returns "" unless exactly one run carries digits and that
// run has an operator: "3 apples and 4 pears" is not a calculation.
func ExtractExpression(text string) string {
	found := ""
	for _, run := range arithmeticRun.FindAllString(text, -1) {
		run = strings.TrimSpace(run)
		if !strings.ContainsAny(run, "0123456789") {
			continue
		}
		if found != "" {
			return ""
		}
		found = run
	}
	if !strings.ContainsAny(found, "+-*/%") {
		return ""
	}
	return found
}

// Calculate extracts and evaluates the arithmetic in a user utterance. Any
// failure yields InvalidCalculation.
func Calculate(text string) string {
	expr := ExtractExpression(text)
	if expr == "" {
		return InvalidCalculation
	}
	v, err := Evaluate(expr)
	if err != nil {
		return InvalidCalculation
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewCalculator exposes Evaluate as a tool taking an "expression" argument.
func NewCalculator() Tool {
	params := ObjectSchema([]Property{
		{Name: "expression", Type: "string", Description: "arithmetic expression such as (2+3)*4", Required: true},
	})
	return NewFunctionTool(CalculatorID, "Evaluates an arithmetic expression", params,
		func(_ context.Context, args map[string]any) (any, error) {
			expr, _ := args["expression"].(string)
			return Evaluate(expr)
		})
}
