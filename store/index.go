package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidK is returned when a search asks for fewer than one result.
	ErrInvalidK = errors.New("k must be positive")

	// ErrEmptyRecord is returned when inserting blank text or an empty embedding.
	ErrEmptyRecord = errors.New("record needs text and an embedding")
)

// VectorIndex is a similarity-searchable, append-only set of texts.
// Implementations must be safe for concurrent use, and a record must be
// visible to Search only once Insert has returned.
type VectorIndex interface {
	// Search returns up to k stored texts, most similar to query first.
	Search(ctx context.Context, query []float32, k int) ([]SearchResult, error)

	// Insert appends text with its embedding.
	Insert(ctx context.Context, text string, embedding []float32) error
}

// Record is one stored memory.
type Record struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
}

// SearchResult is a ranked hit.
type SearchResult struct {
	Text  string
	Score float64
}

// Texts returns the texts of results, in order.
func Texts(results []SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Text
	}
	return out
}

// CheckInsert validates a record before it is stored.
func CheckInsert(text string, embedding []float32) error {
	if strings.TrimSpace(text) == "" || len(embedding) == 0 {
		return ErrEmptyRecord
	}
	return nil
}

// CheckK validates the k of a search.
func CheckK(k int) error {
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}

// Cosine returns the cosine similarity of a and b, or 0 when their lengths
// differ or either has zero norm.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	x, y := widen(a), widen(b)
	na, nb := floats.Norm(x, 2), floats.Norm(y, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(x, y) / (na * nb)
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

// Rank scores records, given in insertion order, against query and keeps the
// best k. Equal scores keep insertion order.
func Rank(records []Record, query []float32, k int) []SearchResult {
	results := make([]SearchResult, len(records))
	for i, r := range records {
		results[i] = SearchResult{Text: r.Text, Score: Cosine(query, r.Embedding)}
	}
	slices.SortStableFunc(results, func(a, b SearchResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if len(results) > k {
		results = results[:k]
	}
	return results
}
