package prebuilt

import (
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// DefaultCallTimeout bounds model calls and tool attempts.
const DefaultCallTimeout = 30 * time.Second

type options struct {
	callTimeout  time.Duration
	toolTimeout  time.Duration
	systemPrompt string
	callOptions  []llms.CallOption
	maxSteps     int
	skipUnknown  bool
	logger       log.Logger
	formatter    graph.NodeFunc[ToolState]
}

// Option configures the prebuilt nodes and graphs.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		callTimeout: DefaultCallTimeout,
		toolTimeout: DefaultCallTimeout,
		maxSteps:    graph.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = log.OrDefault(o.logger)
	return o
}

// WithCallTimeout bounds each model call. Zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(o *options) {
		o.callTimeout = d
	}
}

// WithToolTimeout bounds each tool attempt. A timed out attempt counts as a failure.
func WithToolTimeout(d time.Duration) Option {
	return func(o *options) {
		o.toolTimeout = d
	}
}

// WithSystemPrompt prepends a system message to every model call.
func WithSystemPrompt(prompt string) Option {
	return func(o *options) {
		o.systemPrompt = prompt
	}
}

// WithCallOptions passes extra options, such as a temperature, to the model.
func WithCallOptions(opts ...llms.CallOption) Option {
	return func(o *options) {
		o.callOptions = append(o.callOptions, opts...)
	}
}

// WithMaxSteps sets the recursion limit of the compiled graph.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

// WithSkipUnknownTools makes the tool node ignore calls to unregistered tools
// instead of answering them with an error result.
func WithSkipUnknownTools() Option {
	return func(o *options) {
		o.skipUnknown = true
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFormatter replaces the tool selector's pass-through formatter node.
func WithFormatter(fn graph.NodeFunc[ToolState]) Option {
	return func(o *options) {
		o.formatter = fn
	}
}
