package graph

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// StateGraph is a builder for a directed graph of nodes sharing a state of type S.
// Exactly one node runs at a time; after it finishes, its outgoing route decides
// which node runs next.
//
// Example usage:
//
//	g := graph.NewStateGraph[MyState]()
//	g.AddNode("increment", "Increment counter", func(ctx context.Context, s MyState) (MyState, error) {
//	    s.Count++
//	    return s, nil
//	})
//	g.AddEdge(graph.START, "increment")
//	g.AddEdge("increment", graph.END)
//	app, err := g.Compile()
type StateGraph[S any] struct {
	// nodes is a map of node names to their corresponding Node objects
	nodes map[string]Node[S]

	// order keeps node names in insertion order for rendering
	order []string

	// edges maps a node to its single fixed successor
	edges map[string]string

	// conditionalEdges maps a node to its router and path map
	conditionalEdges map[string]ConditionalEdge[S]

	// entryPoint is the name of the entry point node in the graph
	entryPoint string

	// schema merges node results into the running state
	schema Schema[S]

	// errs collects wiring mistakes reported by Compile
	errs []error
}

// NewStateGraph creates a new instance of StateGraph.
func NewStateGraph[S any]() *StateGraph[S] {
	return &StateGraph[S]{
		nodes:            make(map[string]Node[S]),
		edges:            make(map[string]string),
		conditionalEdges: make(map[string]ConditionalEdge[S]),
	}
}

// AddNode adds a new node to the state graph with the given name, description and function.
func (g *StateGraph[S]) AddNode(name, description string, fn NodeFunc[S]) {
	switch {
	case name == START || name == END:
		g.errs = append(g.errs, &ConfigurationError{Node: name, Err: ErrReservedName})
		return
	case name == "" || fn == nil:
		g.errs = append(g.errs, &ConfigurationError{Node: name, Err: errors.New("node needs a name and a function")})
		return
	}
	if _, ok := g.nodes[name]; ok {
		g.errs = append(g.errs, &ConfigurationError{Node: name, Err: ErrDuplicateNode})
		return
	}
	g.nodes[name] = Node[S]{Name: name, Description: description, Function: fn}
	g.order = append(g.order, name)
}

// AddEdge adds a fixed transition. An edge from START sets the entry point.
func (g *StateGraph[S]) AddEdge(from, to string) {
	if from == START {
		g.SetEntryPoint(to)
		return
	}
	if g.hasRoute(from) {
		g.errs = append(g.errs, &ConfigurationError{Node: from, Err: ErrDuplicateRoute})
		return
	}
	g.edges[from] = to
}

// AddConditionalEdge routes from a node using router. The label returned by the
// router is looked up in pathMap to find the next node (or END).
func (g *StateGraph[S]) AddConditionalEdge(from string, router Router[S], pathMap map[string]string) {
	if g.hasRoute(from) {
		g.errs = append(g.errs, &ConfigurationError{Node: from, Err: ErrDuplicateRoute})
		return
	}
	paths := make(map[string]string, len(pathMap))
	for label, target := range pathMap {
		paths[label] = target
	}
	g.conditionalEdges[from] = ConditionalEdge[S]{From: from, Router: router, PathMap: paths}
}

// SetEntryPoint sets the entry point node name for the state graph.
func (g *StateGraph[S]) SetEntryPoint(name string) {
	g.entryPoint = name
}

// SetSchema sets the state schema for the graph.
func (g *StateGraph[S]) SetSchema(schema Schema[S]) {
	g.schema = schema
}

func (g *StateGraph[S]) hasRoute(from string) bool {
	_, fixed := g.edges[from]
	_, cond := g.conditionalEdges[from]
	return fixed || cond
}

func (g *StateGraph[S]) isTarget(name string) bool {
	if name == END {
		return true
	}
	_, ok := g.nodes[name]
	return ok
}

// validate returns every wiring mistake in the graph, joined.
func (g *StateGraph[S]) validate() error {
	errs := append([]error(nil), g.errs...)

	switch {
	case g.entryPoint == "":
		errs = append(errs, &ConfigurationError{Err: ErrEntryPointNotSet})
	case !g.isTarget(g.entryPoint) || g.entryPoint == END:
		errs = append(errs, &ConfigurationError{Node: g.entryPoint, Err: fmt.Errorf("%w: entry point", ErrNodeNotFound)})
	}

	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			errs = append(errs, &ConfigurationError{Node: from, Err: fmt.Errorf("%w: edge source", ErrNodeNotFound)})
		}
		if !g.isTarget(to) {
			errs = append(errs, &ConfigurationError{Node: from, Err: fmt.Errorf("%w: edge target %q", ErrNodeNotFound, to)})
		}
	}

	for from, cond := range g.conditionalEdges {
		if _, ok := g.nodes[from]; !ok {
			errs = append(errs, &ConfigurationError{Node: from, Err: fmt.Errorf("%w: conditional edge source", ErrNodeNotFound)})
		}
		if cond.Router == nil {
			errs = append(errs, &ConfigurationError{Node: from, Err: errors.New("conditional edge has no router")})
		}
		if len(cond.PathMap) == 0 {
			errs = append(errs, &ConfigurationError{Node: from, Err: errors.New("conditional edge has an empty path map")})
		}
		for label, to := range cond.PathMap {
			if !g.isTarget(to) {
				errs = append(errs, &ConfigurationError{Node: from, Err: fmt.Errorf("%w: label %q targets %q", ErrNodeNotFound, label, to)})
			}
		}
	}

	for _, name := range g.order {
		if !g.hasRoute(name) {
			errs = append(errs, &ConfigurationError{Node: name, Err: ErrNoOutgoingEdge})
		}
	}

	return errors.Join(errs...)
}

// CompileOption configures a Runnable.
type CompileOption func(*compileOptions)

type compileOptions struct {
	maxSteps  int
	listeners []any
	logger    log.Logger
}

// WithMaxSteps sets how many node executions one invocation may perform.
// Values below one keep DefaultMaxSteps.
func WithMaxSteps(n int) CompileOption {
	return func(o *compileOptions) {
		if n > 0 {
			o.maxSteps = n
		}
	}
}

// WithListener attaches a listener notified about every node execution.
// The listener must implement NodeListener for the graph's state type.
func WithListener[S any](l NodeListener[S]) CompileOption {
	return func(o *compileOptions) {
		o.listeners = append(o.listeners, l)
	}
}

// WithLogger sets the logger used for execution tracing.
func WithLogger(logger log.Logger) CompileOption {
	return func(o *compileOptions) {
		o.logger = logger
	}
}

// Runnable is a compiled, immutable StateGraph. It is safe for concurrent use
// as long as node functions are.
type Runnable[S any] struct {
	nodes     map[string]Node[S]
	edges     map[string]string
	cond      map[string]ConditionalEdge[S]
	order     []string
	entry     string
	schema    Schema[S]
	maxSteps  int
	listeners []NodeListener[S]
	logger    log.Logger
}

// Compile validates the graph and returns a Runnable. All wiring mistakes are
// reported at once as *ConfigurationError values joined together.
func (g *StateGraph[S]) Compile(opts ...CompileOption) (*Runnable[S], error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	o := compileOptions{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Runnable[S]{
		nodes:    make(map[string]Node[S], len(g.nodes)),
		edges:    make(map[string]string, len(g.edges)),
		cond:     make(map[string]ConditionalEdge[S], len(g.conditionalEdges)),
		order:    append([]string(nil), g.order...),
		entry:    g.entryPoint,
		schema:   g.schema,
		maxSteps: o.maxSteps,
		logger:   log.OrDefault(o.logger),
	}
	if r.schema == nil {
		r.schema = OverwriteSchema[S]{}
	}
	for k, v := range g.nodes {
		r.nodes[k] = v
	}
	for k, v := range g.edges {
		r.edges[k] = v
	}
	for k, v := range g.conditionalEdges {
		r.cond[k] = v
	}
	for _, l := range o.listeners {
		typed, ok := l.(NodeListener[S])
		if !ok {
			return nil, &ConfigurationError{Err: fmt.Errorf("listener %T does not match the graph state type", l)}
		}
		r.listeners = append(r.listeners, typed)
	}
	return r, nil
}

// MaxSteps reports the recursion limit of the runnable.
func (r *Runnable[S]) MaxSteps() int {
	return r.maxSteps
}

// Invoke executes the graph from its entry point until END is reached.
// On failure it returns the last successfully committed state together with the error.
func (r *Runnable[S]) Invoke(ctx context.Context, input S) (S, error) {
	return r.run(ctx, input, nil)
}

// Stream executes the graph and yields the committed state after every node.
// A failure is yielded once, paired with the last good state, and ends the sequence.
//
//	for ev, err := range app.Stream(ctx, input) {
//	    if err != nil { ... }
//	    fmt.Println(ev.Node)
//	}
func (r *Runnable[S]) Stream(ctx context.Context, input S) iter.Seq2[StreamEvent[S], error] {
	return func(yield func(StreamEvent[S], error) bool) {
		stopped := false
		state, err := r.run(ctx, input, func(ev StreamEvent[S]) bool {
			if !yield(ev, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			yield(StreamEvent[S]{State: state, Timestamp: time.Now()}, err)
		}
	}
}

func (r *Runnable[S]) run(ctx context.Context, input S, emit func(StreamEvent[S]) bool) (S, error) {
	var zero S
	state, err := r.schema.Update(zero, input)
	if err != nil {
		return input, fmt.Errorf("failed to initialize state with schema: %w", err)
	}

	current := r.entry
	for step := 0; current != END; step++ {
		if step >= r.maxSteps {
			r.logger.Warn("graph stopped after %d steps, next node was %s", step, current)
			return state, fmt.Errorf("%w: %d steps without reaching %s", ErrRecursionLimit, r.maxSteps, END)
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}

		node := r.nodes[current]
		r.logger.Debug("step %d: running node %s", step, current)
		r.notify(ctx, NodeEventStart, current, state, nil)

		update, err := node.Function(ctx, state)
		if err != nil {
			r.notify(ctx, NodeEventError, current, state, err)
			return state, &NodeError{Node: current, Err: err}
		}
		next, err := r.schema.Update(state, update)
		if err != nil {
			r.notify(ctx, NodeEventError, current, state, err)
			return state, &NodeError{Node: current, Err: fmt.Errorf("state update failed: %w", err)}
		}
		state = next
		r.notify(ctx, NodeEventComplete, current, state, nil)

		if emit != nil && !emit(StreamEvent[S]{Step: step, Node: current, State: state, Timestamp: time.Now()}) {
			return state, nil
		}

		current, err = r.resolve(ctx, current, state)
		if err != nil {
			return state, err
		}
	}
	return state, nil
}

// resolve picks the successor of node for the given state.
func (r *Runnable[S]) resolve(ctx context.Context, node string, state S) (string, error) {
	if to, ok := r.edges[node]; ok {
		return to, nil
	}
	cond := r.cond[node]
	label, err := cond.Router(ctx, state)
	if err != nil {
		return "", &NodeError{Node: node, Err: fmt.Errorf("router failed: %w", err)}
	}
	to, ok := cond.PathMap[label]
	if !ok {
		return "", &ConfigurationError{Node: node, Err: fmt.Errorf("%w: %q", ErrUnknownLabel, label)}
	}
	r.logger.Debug("node %s routed to %s via %q", node, to, label)
	return to, nil
}

func (r *Runnable[S]) notify(ctx context.Context, event NodeEvent, node string, state S, err error) {
	for _, l := range r.listeners {
		l.OnNodeEvent(ctx, event, node, state, err)
	}
}
