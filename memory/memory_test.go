package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/log"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/store"
	"github.com/Prateek-Kumar98217/langraph-test/store/inmemory"
)

// MockLLM answers single prompts with a function of the prompt text.
type MockLLM struct {
	mu      sync.Mutex
	respond func(prompt string) (string, error)
	prompts []string
}

func (m *MockLLM) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	var prompt string
	if len(messages) > 0 {
		for _, p := range messages[len(messages)-1].Parts {
			if text, ok := p.(llms.TextContent); ok {
				prompt += text.Text
			}
		}
	}
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	reply, err := m.respond(prompt)
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: reply}}}, nil
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

// personalFacts says yes to statements about the user.
func personalFacts(prompt string) (string, error) {
	if strings.Contains(prompt, "My name is") || strings.Contains(prompt, "I live in") {
		return "Yes", nil
	}
	return "No", nil
}

func userTurn(text string) State {
	return State{Messages: []message.Message{message.NewUser(text)}}
}

func TestParseDecision(t *testing.T) {
	yes := []string{"Yes", "yes", "  YES.  ", "Yes, it is personal info"}
	no := []string{"No", "", "  ", "nope", "I cannot tell", "Y"}
	for _, r := range yes {
		assert.True(t, ParseDecision(r), r)
	}
	for _, r := range no {
		assert.False(t, ParseDecision(r), r)
	}
}

func TestEvaluatorPrompt(t *testing.T) {
	p := EvaluatorPrompt("My name is Alex")
	assert.Equal(t, "The user said: 'My name is Alex'.\n"+
		"Does this contain factual or personal info worth remembering?\n"+
		"Respond with only 'Yes' or 'No'.", p)
}

func TestRouteStore(t *testing.T) {
	label, err := RouteStore(context.Background(), State{Store: true})
	require.NoError(t, err)
	assert.Equal(t, "creator", label)

	label, err = RouteStore(context.Background(), State{})
	require.NoError(t, err)
	assert.Equal(t, "end", label)
}

func TestSubgraph_StoresPersonalFact(t *testing.T) {
	ctx := context.Background()
	embedder := NewHashEmbedder(128)
	index := inmemory.New()
	model := &MockLLM{respond: personalFacts}

	sub, err := NewSubgraph(model, embedder, index, WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	out, err := sub.Invoke(ctx, userTurn("My name is Alex"))
	require.NoError(t, err)
	assert.True(t, out.Store)
	assert.Equal(t, "My name is Alex", out.StructuredMemory)
	assert.Empty(t, out.RelevantMemory)
	assert.Equal(t, 1, index.Len())
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "'My name is Alex'")
}

func TestSubgraph_SkipsQuestion(t *testing.T) {
	ctx := context.Background()
	index := inmemory.New()

	sub, err := NewSubgraph(&MockLLM{respond: personalFacts}, NewHashEmbedder(128), index, WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	out, err := sub.Invoke(ctx, userTurn("what's the weather"))
	require.NoError(t, err)
	assert.False(t, out.Store)
	assert.Empty(t, out.StructuredMemory)
	assert.Zero(t, index.Len())
}

func TestSubgraph_RoundTrip(t *testing.T) {
	ctx := context.Background()
	embedder := NewHashEmbedder(256)
	index := inmemory.New()
	require.NoError(t, Seed(ctx, embedder, index, DefaultSeed))

	sub, err := NewSubgraph(&MockLLM{respond: personalFacts}, embedder, index,
		WithExclude(DefaultSeed), WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	_, err = sub.Invoke(ctx, userTurn("My name is Alex"))
	require.NoError(t, err)
	_, err = sub.Invoke(ctx, userTurn("I live in Oslo"))
	require.NoError(t, err)
	assert.Equal(t, 3, index.Len())

	out, err := sub.Invoke(ctx, userTurn("what is my name"))
	require.NoError(t, err)
	require.NotEmpty(t, out.RelevantMemory)
	assert.Equal(t, "My name is Alex", out.RelevantMemory[0])
	assert.NotContains(t, out.RelevantMemory, DefaultSeed)
	assert.False(t, out.Store)
}

func TestSubgraph_StoreIsRecomputed(t *testing.T) {
	sub, err := NewSubgraph(&MockLLM{respond: personalFacts}, NewHashEmbedder(64), inmemory.New(), WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	in := userTurn("what's the weather")
	in.Store = true
	out, err := sub.Invoke(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, out.Store)
}

func TestSubgraph_EvaluatorErrorSurfaces(t *testing.T) {
	boom := errors.New("model down")
	sub, err := NewSubgraph(&MockLLM{respond: func(string) (string, error) { return "", boom }},
		NewHashEmbedder(64), inmemory.New(), WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	_, err = sub.Invoke(context.Background(), userTurn("My name is Alex"))
	var nodeErr *graph.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "evaluator", nodeErr.Node)
	assert.ErrorIs(t, err, boom)
}

func TestSubgraph_EmptyHistory(t *testing.T) {
	sub, err := NewSubgraph(&MockLLM{respond: personalFacts}, NewHashEmbedder(64), inmemory.New(), WithLogger(log.NoOpLogger{}))
	require.NoError(t, err)

	_, err = sub.Invoke(context.Background(), State{})
	assert.ErrorIs(t, err, message.ErrMissingInput)
}

func TestRetriever_TopK(t *testing.T) {
	ctx := context.Background()
	embedder := NewHashEmbedder(256)
	index := inmemory.New()
	require.NoError(t, Seed(ctx, embedder, index,
		"tea is my favourite drink",
		"green tea every morning",
		"tea with milk",
		"tea in the evening",
		"coffee never",
	))

	got, err := NewRetriever(embedder, index).Recall(ctx, "tea")
	require.NoError(t, err)
	assert.Len(t, got, DefaultTopK)

	got, err = NewRetriever(embedder, index, WithTopK(1)).Recall(ctx, "coffee")
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee never"}, got)

	dup := inmemory.New()
	u := NewUpdater(embedder, dup, WithLogger(log.NoOpLogger{}))
	for range 3 {
		require.NoError(t, u.Remember(ctx, DefaultSeed))
	}
	for _, fact := range []string{"your name is Alex", "you manage my calendar", "my name is Sam"} {
		require.NoError(t, u.Remember(ctx, fact))
	}
	got, err = NewRetriever(embedder, dup, WithExclude(DefaultSeed)).
		Recall(ctx, "is your name Yomun the memory manager")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, DefaultSeed)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	embedder := NewHashEmbedder(64)
	index := inmemory.New()
	for range 3 {
		require.NoError(t, Seed(ctx, embedder, index, DefaultSeed, "tea with milk"))
	}
	assert.Equal(t, 2, index.Len())
}

func TestUpdater_EmptyMemoryIsNoop(t *testing.T) {
	index := inmemory.New()
	u := NewUpdater(NewHashEmbedder(16), index, WithLogger(log.NoOpLogger{}))
	_, err := u.Node(context.Background(), State{})
	require.NoError(t, err)
	assert.Zero(t, index.Len())
}

func TestHashEmbedder(t *testing.T) {
	ctx := context.Background()
	e := NewHashEmbedder(0)
	assert.Equal(t, 384, e.Dimension)

	a, err := e.EmbedQuery(ctx, "My name is Alex")
	require.NoError(t, err)
	b, err := e.EmbedQuery(ctx, "my NAME is alex!")
	require.NoError(t, err)
	assert.Len(t, a, 384)
	assert.InDelta(t, 1.0, store.Cosine(a, b), 1e-6)

	docs, err := e.EmbedDocuments(ctx, []string{"one", "two"})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Less(t, store.Cosine(docs[0], docs[1]), 0.5)
}
