package prebuilt

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/tool"
)

// Labels the selector can produce.
const (
	SelectCalculator = "calculator"
	SelectWeather    = "weather"
	SelectNone       = "none"
)

var selectable = []string{SelectCalculator, SelectWeather, SelectNone}

// SelectorPrompt asks the model which tool fits query.
func SelectorPrompt(query string) string {
	return fmt.Sprintf("the user said this: '%s'.\n"+
		"Which tool should be used? Choose from ['calculator', 'weather', 'none']. \n"+
		"Reply with only the tool name", query)
}

// NormalizeSelection maps a model reply onto calculator, weather or none.
// An exact label wins, then a reply mentioning exactly one label; anything
// else is none.
func NormalizeSelection(reply string) string {
	r := strings.Trim(strings.ToLower(strings.TrimSpace(reply)), "'\".`")
	for _, label := range selectable {
		if r == label {
			return label
		}
	}
	found := ""
	for _, label := range selectable {
		if strings.Contains(r, label) {
			if found != "" {
				return SelectNone
			}
			found = label
		}
	}
	if found == "" {
		return SelectNone
	}
	return found
}

// RouteSelectedTool routes on ToolState.SelectedTool.
func RouteSelectedTool(_ context.Context, s ToolState) (string, error) {
	return s.SelectedTool, nil
}

// CreateToolSelector builds the tool-selector graph:
//
//	selector -> calculator | weather -> formatter -> END
//	         -> END (none)
func CreateToolSelector(model llms.Model, opts ...Option) (*graph.Runnable[ToolState], error) {
	o := newOptions(opts)

	selector := func(ctx context.Context, s ToolState) (ToolState, error) {
		last, err := message.Last(s.Messages)
		if err != nil {
			return s, err
		}
		reply, err := graph.WithTimeout(ctx, o.callTimeout, func(ctx context.Context) (string, error) {
			return llms.GenerateFromSinglePrompt(ctx, model, SelectorPrompt(last.Content), o.callOptions...)
		})
		if err != nil {
			return s, fmt.Errorf("tool selection failed: %w", err)
		}
		s.SelectedTool = NormalizeSelection(reply)
		s.ToolInput = last.Content
		s.ToolOutput = ""
		o.logger.Info("[Tool Selector] Selected tool: %s", s.SelectedTool)
		return s, nil
	}

	calculator := func(_ context.Context, s ToolState) (ToolState, error) {
		s.ToolOutput = tool.Calculate(s.ToolInput)
		o.logger.Info("[Calculator Tool] Result: %s", s.ToolOutput)
		return s, nil
	}

	weather := func(_ context.Context, s ToolState) (ToolState, error) {
		s.ToolOutput = tool.WeatherReport(s.ToolInput)
		o.logger.Info("[Weather Tool] Result: %s", s.ToolOutput)
		return s, nil
	}

	formatter := o.formatter
	if formatter == nil {
		formatter = func(_ context.Context, s ToolState) (ToolState, error) {
			o.logger.Info("[Formatter] Tool Output: %s", s.ToolOutput)
			return s, nil
		}
	}

	g := graph.NewStateGraph[ToolState]()
	g.SetSchema(ToolSchema())
	g.AddNode("selector", "Pick a tool with the model", selector)
	g.AddNode("calculator", "Evaluate arithmetic", calculator)
	g.AddNode("weather", "Report the weather", weather)
	g.AddNode("formatter", "Format the tool output", formatter)

	g.AddEdge(graph.START, "selector")
	g.AddConditionalEdge("selector", RouteSelectedTool, map[string]string{
		SelectCalculator: "calculator",
		SelectWeather:    "weather",
		SelectNone:       graph.END,
	})
	g.AddEdge("calculator", "formatter")
	g.AddEdge("weather", "formatter")
	g.AddEdge("formatter", graph.END)

	return g.Compile(graph.WithMaxSteps(o.maxSteps), graph.WithLogger(o.logger))
}
