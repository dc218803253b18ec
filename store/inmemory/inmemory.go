// Package inmemory provides a process-local vector index.
package inmemory

import (
	"context"
	"sync"

	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// Index keeps records in a slice. Readers run concurrently; an insert is
// visible once it returns.
type Index struct {
	mu      sync.RWMutex
	records []store.Record
}

var _ store.VectorIndex = (*Index)(nil)

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Insert appends a record.
func (x *Index) Insert(_ context.Context, text string, embedding []float32) error {
	if err := store.CheckInsert(text, embedding); err != nil {
		return err
	}
	rec := store.Record{Text: text, Embedding: append([]float32(nil), embedding...)}

	x.mu.Lock()
	x.records = append(x.records, rec)
	x.mu.Unlock()
	return nil
}

// Search returns the k records most similar to query.
func (x *Index) Search(ctx context.Context, query []float32, k int) ([]store.SearchResult, error) {
	if err := store.CheckK(k); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x.mu.RLock()
	records := x.records[:len(x.records):len(x.records)]
	x.mu.RUnlock()

	return store.Rank(records, query, k), nil
}

// Len returns the number of stored records.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.records)
}
