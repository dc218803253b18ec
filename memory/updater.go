package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tmc/langchaingo/embeddings"

	"github.com/Prateek-Kumar98217/langraph-test/graph"
	"github.com/Prateek-Kumar98217/langraph-test/log"
	"github.com/Prateek-Kumar98217/langraph-test/message"
	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// Creator prepares the latest message for storage.
type Creator struct {
	logger log.Logger
}

// NewCreator creates a Creator.
func NewCreator(opts ...Option) *Creator {
	return &Creator{logger: newOptions(opts).logger}
}

// Node is the creator's graph node.
func (c *Creator) Node(_ context.Context, s State) (State, error) {
	last, err := message.Last(s.Messages)
	if err != nil {
		return s, err
	}
	s.StructuredMemory = strings.TrimSpace(last.Content)
	c.logger.Info("[MemoryCreator] Created: %s", s.StructuredMemory)
	return s, nil
}

// Updater embeds State.StructuredMemory and appends it to the index.
type Updater struct {
	embedder embeddings.Embedder
	index    store.VectorIndex
	opts     options
}

// NewUpdater creates an Updater writing to index.
func NewUpdater(embedder embeddings.Embedder, index store.VectorIndex, opts ...Option) *Updater {
	return &Updater{embedder: embedder, index: index, opts: newOptions(opts)}
}

// Remember embeds text and stores it.
func (u *Updater) Remember(ctx context.Context, text string) error {
	vecs, err := graph.WithTimeout(ctx, u.opts.timeout, func(ctx context.Context) ([][]float32, error) {
		return u.embedder.EmbedDocuments(ctx, []string{text})
	})
	if err != nil {
		return fmt.Errorf("embed memory: %w", err)
	}
	if len(vecs) != 1 {
		return fmt.Errorf("embed memory: expected 1 vector, got %d", len(vecs))
	}
	if err := u.index.Insert(ctx, text, vecs[0]); err != nil {
		return fmt.Errorf("store memory: %w", err)
	}
	return nil
}

// Node is the updater's graph node. An empty StructuredMemory stores nothing.
func (u *Updater) Node(ctx context.Context, s State) (State, error) {
	if s.StructuredMemory == "" {
		return s, nil
	}
	if err := u.Remember(ctx, s.StructuredMemory); err != nil {
		return s, err
	}
	u.opts.logger.Info("[MemoryUpdater] Stored: %s", s.StructuredMemory)
	return s, nil
}

// Seed stores facts the memory should start with. A fact already stored with
// the same text is not stored again, so seeding a persistent index on every
// start leaves one copy.
func Seed(ctx context.Context, embedder embeddings.Embedder, index store.VectorIndex, facts ...string) error {
	u := NewUpdater(embedder, index)
	for _, f := range facts {
		if strings.TrimSpace(f) == "" {
			continue
		}
		vec, err := graph.WithTimeout(ctx, u.opts.timeout, func(ctx context.Context) ([]float32, error) {
			return embedder.EmbedQuery(ctx, f)
		})
		if err != nil {
			return fmt.Errorf("embed seed: %w", err)
		}
		hits, err := index.Search(ctx, vec, seedNeighbors)
		if err != nil {
			return fmt.Errorf("search seed: %w", err)
		}
		if slices.ContainsFunc(hits, func(h store.SearchResult) bool { return h.Text == f }) {
			continue
		}
		if err := index.Insert(ctx, f, vec); err != nil {
			return fmt.Errorf("store seed: %w", err)
		}
	}
	return nil
}

// seedNeighbors is how many nearest records Seed inspects for an existing copy.
const seedNeighbors = 5
