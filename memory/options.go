package memory

import (
	"time"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// DefaultTopK is how many facts the retriever recalls.
const DefaultTopK = 3

// DefaultSeed is the fact the memory store starts with.
const DefaultSeed = "your name is Yomun, a memory manager"

type options struct {
	topK    int
	exclude map[string]struct{}
	timeout time.Duration
	logger  log.Logger
}

// Option configures the memory components.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		topK:    DefaultTopK,
		exclude: map[string]struct{}{},
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = log.OrDefault(o.logger)
	return o
}

// WithTopK sets how many facts are recalled. Values below one are ignored.
func WithTopK(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.topK = k
		}
	}
}

// WithExclude hides texts, such as the seed fact, from recall.
func WithExclude(texts ...string) Option {
	return func(o *options) {
		for _, t := range texts {
			o.exclude[t] = struct{}{}
		}
	}
}

// WithTimeout bounds each model or embedding call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
