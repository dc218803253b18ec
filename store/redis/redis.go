package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// Index implements store.VectorIndex using a Redis list
type Index struct {
	client redis.UniversalClient
	key    string
}

var _ store.VectorIndex = (*Index)(nil)

// Options configuration for Redis connection
type Options struct {
	// URL takes precedence over Addr, Password and DB when set.
	URL      string
	Addr     string
	Password string
	DB       int
	Key      string // List key, default "langraph:memories"
}

// New creates a Redis index
func New(opts Options) (*Index, error) {
	redisOpts := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		redisOpts = parsed
	}
	return NewWithClient(redis.NewClient(redisOpts), opts.Key), nil
}

// NewWithClient creates an index on an existing client.
func NewWithClient(client redis.UniversalClient, key string) *Index {
	if key == "" {
		key = "langraph:memories"
	}
	return &Index{client: client, key: key}
}

// Insert appends a record to the list
func (x *Index) Insert(ctx context.Context, text string, embedding []float32) error {
	if err := store.CheckInsert(text, embedding); err != nil {
		return err
	}
	data, err := json.Marshal(store.Record{Text: text, Embedding: embedding})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := x.client.RPush(ctx, x.key, data).Err(); err != nil {
		return fmt.Errorf("failed to insert record into redis: %w", err)
	}
	return nil
}

// Search ranks every stored record against query
func (x *Index) Search(ctx context.Context, query []float32, k int) ([]store.SearchResult, error) {
	if err := store.CheckK(k); err != nil {
		return nil, err
	}
	raw, err := x.client.LRange(ctx, x.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from redis: %w", err)
	}

	records := make([]store.Record, 0, len(raw))
	for i, item := range raw {
		var rec store.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return store.Rank(records, query, k), nil
}

// Len returns the number of stored records
func (x *Index) Len(ctx context.Context) (int64, error) {
	return x.client.LLen(ctx, x.key).Result()
}

// Close closes the underlying client
func (x *Index) Close() error {
	return x.client.Close()
}
