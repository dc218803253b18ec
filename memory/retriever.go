package memory

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// Retriever recalls the stored facts most similar to the latest message.
type Retriever struct {
	embedder embeddings.Embedder
	index    store.VectorIndex
	opts     options
}

// NewRetriever creates a retriever over index.
func NewRetriever(embedder embeddings.Embedder, index store.VectorIndex, opts ...Option) *Retriever {
	return &Retriever{embedder: embedder, index: index, opts: newOptions(opts)}
}

// Recall returns up to k facts similar to text, most similar first.
func (r *Retriever) Recall(ctx context.Context, text string) ([]string, error) {
	vec, err := graph.WithTimeout(ctx, r.opts.timeout, func(ctx context.Context) ([]float32, error) {
		return r.embedder.EmbedQuery(ctx, text)
	})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	// Excluded texts may be stored many times, so widen the search until
	// topK others are found or the index has nothing more to give.
	k := r.opts.topK + len(r.opts.exclude)
	for {
		hits, err := r.index.Search(ctx, vec, k)
		if err != nil {
			return nil, fmt.Errorf("search memories: %w", err)
		}
		out := make([]string, 0, r.opts.topK)
		for _, h := range hits {
			if _, skip := r.opts.exclude[h.Text]; skip {
				continue
			}
			out = append(out, h.Text)
			if len(out) == r.opts.topK {
				return out, nil
			}
		}
		if len(hits) < k {
			return out, nil
		}
		k *= 2
	}
}

// Node is the retriever's graph node.
func (r *Retriever) Node(ctx context.Context, s State) (State, error) {
	last, err := message.Last(s.Messages)
	if err != nil {
		return s, err
	}
	recalled, err := r.Recall(ctx, last.Content)
	if err != nil {
		return s, err
	}
	r.opts.logger.Info("[MemoryRetriever] Memory for %q: %q", last.Content, recalled)
	s.RelevantMemory = recalled
	return s, nil
}
