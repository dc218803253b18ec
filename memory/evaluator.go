package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
)

const evaluatorPrompt = "The user said: '%s'.\n" +
	"Does this contain factual or personal info worth remembering?\n" +
	"Respond with only 'Yes' or 'No'."

// EvaluatorPrompt returns the classification prompt for a user message.
func EvaluatorPrompt(userInput string) string {
	return fmt.Sprintf(evaluatorPrompt, userInput)
}

// ParseDecision reports whether a classifier reply means "store it".
// Anything without "yes" in it, including an empty reply, is a no.
func ParseDecision(reply string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(reply)), "yes")
}

// Evaluator asks the model whether the latest message is worth remembering.
type Evaluator struct {
	model llms.Model
	opts  options
}

// NewEvaluator creates an evaluator backed by model.
func NewEvaluator(model llms.Model, opts ...Option) *Evaluator {
	return &Evaluator{model: model, opts: newOptions(opts)}
}

// Node is the evaluator's graph node. It always sets State.Store.
func (e *Evaluator) Node(ctx context.Context, s State) (State, error) {
	last, err := message.Last(s.Messages)
	if err != nil {
		return s, err
	}
	reply, err := graph.WithTimeout(ctx, e.opts.timeout, func(ctx context.Context) (string, error) {
		return llms.GenerateFromSinglePrompt(ctx, e.model, EvaluatorPrompt(last.Content), llms.WithTemperature(0))
	})
	if err != nil {
		return s, fmt.Errorf("memory evaluation: %w", err)
	}
	s.Store = ParseDecision(reply)
	e.opts.logger.Info("[MemoryEvaluator] Decision for %q: %s", last.Content, strings.TrimSpace(reply))
	return s, nil
}

// RouteStore sends the subgraph to the creator when the evaluator decided to store.
func RouteStore(_ context.Context, s State) (string, error) {
	if s.Store {
		return "creator", nil
	}
	return "end", nil
}
