package memory

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/tmc/langchaingo/embeddings"
	"gonum.org/v1/gonum/floats"
)

// HashEmbedder maps text to a fixed-size bag-of-words vector using feature
// hashing. Texts sharing words get a positive cosine similarity. It needs no
// model and is deterministic, which makes it the default for offline runs.
type HashEmbedder struct {
	Dimension int
}

var _ embeddings.Embedder = (*HashEmbedder)(nil)

// NewHashEmbedder creates a HashEmbedder; dimension defaults to 384.
func NewHashEmbedder(dimension int) *HashEmbedder {
	if dimension <= 0 {
		dimension = 384
	}
	return &HashEmbedder{Dimension: dimension}
}

// EmbedDocuments embeds each text.
func (e *HashEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = e.embed(t)
	}
	return out, nil
}

// EmbedQuery embeds a single text.
func (e *HashEmbedder) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	return e.embed(text), nil
}

func (e *HashEmbedder) embed(text string) []float32 {
	dim := e.Dimension
	if dim <= 0 {
		dim = 384
	}
	acc := make([]float64, dim)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New64a()
		_, _ = h.Write([]byte(w))
		sum := h.Sum64()
		sign := 1.0
		if sum>>63 == 1 {
			sign = -1
		}
		acc[sum%uint64(dim)] += sign
	}
	if n := floats.Norm(acc, 2); n > 0 {
		floats.Scale(1/n, acc)
	}
	out := make([]float32, dim)
	for i, v := range acc {
		out[i] = float32(v)
	}
	return out
}
