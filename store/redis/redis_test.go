package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prateek-Kumar98217/langraph-test/store"
)

func TestIndex(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	idx, err := New(Options{Addr: mr.Addr(), Key: "test:memories"})
	require.NoError(t, err)
	defer idx.Close()

	ctx := context.Background()

	got, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, idx.Insert(ctx, "likes tea", []float32{1, 0}))
	require.NoError(t, idx.Insert(ctx, "lives in Oslo", []float32{0, 1}))
	require.NoError(t, idx.Insert(ctx, "likes green tea", []float32{1, 0}))

	n, err := idx.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	got, err = idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"likes tea", "likes green tea"}, store.Texts(got))

	items, err := mr.List("test:memories")
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestIndex_FromURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	idx, err := New(Options{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.Insert(context.Background(), "fact", []float32{1}))
	assert.True(t, mr.Exists("langraph:memories"))

	_, err = New(Options{URL: "not a url"})
	assert.Error(t, err)
}

func TestIndex_CorruptRecord(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	idx := NewWithClient(client, "bad")
	defer idx.Close()

	_, err = mr.Push("bad", "{not json")
	require.NoError(t, err)

	_, err = idx.Search(context.Background(), []float32{1}, 3)
	assert.Error(t, err)
}
