package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// DefaultParallelism bounds how many conversations RunBatch serves at once.
const DefaultParallelism = 4

// ErrUnknownConversation is returned for ids the manager never issued or has reset.
var ErrUnknownConversation = errors.New("unknown conversation")

// Invoker runs one turn over a conversation state. *graph.Runnable implements it.
type Invoker[S any] interface {
	Invoke(ctx context.Context, input S) (S, error)
}

// InputFunc returns a copy of state with the user's text added as the latest input.
// It must not modify state.
type InputFunc[S any] func(state S, text string) S

type conversation[S any] struct {
	mu    sync.Mutex
	state S
	turns int
}

// Manager stores conversation states and serializes turns per conversation.
type Manager[S any] struct {
	app         Invoker[S]
	input       InputFunc[S]
	parallelism int
	logger      log.Logger

	mu            sync.RWMutex
	conversations map[string]*conversation[S]
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	parallelism int
	logger      log.Logger
}

// WithParallelism sets how many conversations RunBatch serves concurrently.
func WithParallelism(n int) Option {
	return func(o *managerOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithLogger sets the logger for turn events.
func WithLogger(l log.Logger) Option {
	return func(o *managerOptions) {
		o.logger = l
	}
}

// New creates a Manager running app for every turn.
func New[S any](app Invoker[S], input InputFunc[S], opts ...Option) *Manager[S] {
	o := managerOptions{parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[S]{
		app:           app,
		input:         input,
		parallelism:   o.parallelism,
		logger:        log.OrDefault(o.logger),
		conversations: make(map[string]*conversation[S]),
	}
}

// NewConversation starts an empty conversation and returns its id.
func (m *Manager[S]) NewConversation() string {
	id := uuid.NewString()
	m.Open(id)
	return id
}

// Open makes sure a conversation with the given id exists.
func (m *Manager[S]) Open(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.conversations[id]; !ok {
		m.conversations[id] = &conversation[S]{}
	}
}

// Reset forgets a conversation.
func (m *Manager[S]) Reset(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conversations, id)
}

// Len reports the number of open conversations.
func (m *Manager[S]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conversations)
}

func (m *Manager[S]) get(id string) (*conversation[S], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conversations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConversation, id)
	}
	return c, nil
}

// History returns the committed state of a conversation and the number of
// turns that completed on it. It waits for an in-flight turn to finish.
func (m *Manager[S]) History(id string) (S, int, error) {
	c, err := m.get(id)
	if err != nil {
		var zero S
		return zero, 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.turns, nil
}

// Chat runs one turn with text as the user's input. Only a successful turn
// is committed; on failure the previous state is returned with the error.
func (m *Manager[S]) Chat(ctx context.Context, id, text string) (S, error) {
	c, err := m.get(id)
	if err != nil {
		var zero S
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out, err := m.app.Invoke(ctx, m.input(c.state, text))
	if err != nil {
		m.logger.Error("[Session] Turn %d of %s failed: %v", c.turns+1, id, err)
		return c.state, err
	}
	c.state = out
	c.turns++
	m.logger.Debug("[Session] Turn %d of %s completed", c.turns, id)
	return out, nil
}

// Request is one user turn addressed to a conversation.
type Request struct {
	Conversation string
	Text         string
}

// Result is the outcome of a Request.
type Result[S any] struct {
	Request
	State S
	Err   error
}

// RunBatch serves reqs and returns one result per request, in request order.
// Requests of one conversation run in the order given; distinct conversations
// run in parallel. Unknown conversations are opened.
func (m *Manager[S]) RunBatch(ctx context.Context, reqs []Request) []Result[S] {
	results := make([]Result[S], len(reqs))

	groups := make(map[string][]int)
	var order []string
	for i, r := range reqs {
		if _, ok := groups[r.Conversation]; !ok {
			order = append(order, r.Conversation)
			m.Open(r.Conversation)
		}
		groups[r.Conversation] = append(groups[r.Conversation], i)
	}

	p := pool.New().WithMaxGoroutines(m.parallelism)
	for _, id := range order {
		indexes := groups[id]
		p.Go(func() {
			for _, i := range indexes {
				state, err := m.Chat(ctx, id, reqs[i].Text)
				results[i] = Result[S]{Request: reqs[i], State: state, Err: err}
			}
		})
	}
	p.Wait()

	m.logger.Info("[Session] Batch of %d turns over %d conversations done", len(reqs), len(order))
	return results
}
