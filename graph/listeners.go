package graph

import (
	"context"
	"time"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// NodeEvent represents different types of node events
type NodeEvent string

const (
	// NodeEventStart indicates a node has started execution
	NodeEventStart NodeEvent = "start"

	// NodeEventComplete indicates a node has completed successfully
	NodeEventComplete NodeEvent = "complete"

	// NodeEventError indicates a node encountered an error
	NodeEventError NodeEvent = "error"
)

// NodeListener defines the interface for node event listeners
type NodeListener[S any] interface {
	// OnNodeEvent is called when a node event occurs
	OnNodeEvent(ctx context.Context, event NodeEvent, nodeName string, state S, err error)
}

// NodeListenerFunc is a function adapter for NodeListener
type NodeListenerFunc[S any] func(ctx context.Context, event NodeEvent, nodeName string, state S, err error)

// OnNodeEvent implements the NodeListener interface
func (f NodeListenerFunc[S]) OnNodeEvent(ctx context.Context, event NodeEvent, nodeName string, state S, err error) {
	f(ctx, event, nodeName, state, err)
}

// LoggingListener logs node events and how long each node took.
type LoggingListener[S any] struct {
	logger  log.Logger
	started map[string]time.Time
}

// NewLoggingListener creates a listener writing to logger (the package default when nil).
// It keeps per-node timing and must not be shared between concurrent invocations.
func NewLoggingListener[S any](logger log.Logger) *LoggingListener[S] {
	return &LoggingListener[S]{
		logger:  log.OrDefault(logger),
		started: make(map[string]time.Time),
	}
}

// OnNodeEvent implements the NodeListener interface
func (l *LoggingListener[S]) OnNodeEvent(_ context.Context, event NodeEvent, nodeName string, _ S, err error) {
	switch event {
	case NodeEventStart:
		l.started[nodeName] = time.Now()
		l.logger.Debug("node %s started", nodeName)
	case NodeEventComplete:
		l.logger.Info("node %s completed in %s", nodeName, time.Since(l.started[nodeName]).Round(time.Millisecond))
	case NodeEventError:
		l.logger.Error("node %s failed: %v", nodeName, err)
	}
}
