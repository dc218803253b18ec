package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// DBPool defines the interface for database connection pool
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Index implements store.VectorIndex using PostgreSQL
type Index struct {
	pool      DBPool
	tableName string
}

var _ store.VectorIndex = (*Index)(nil)

// Options configuration for Postgres connection
type Options struct {
	ConnString string
	TableName  string // Default "memories"
}

// New connects to Postgres and makes sure the table exists
func New(ctx context.Context, opts Options) (*Index, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	idx := NewWithPool(pool, opts.TableName)
	if err := idx.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return idx, nil
}

// NewWithPool creates an index with an existing pool
// Useful for testing with mocks
func NewWithPool(pool DBPool, tableName string) *Index {
	if tableName == "" {
		tableName = "memories"
	}
	return &Index{pool: pool, tableName: tableName}
}

// InitSchema creates the necessary table if it doesn't exist
func (x *Index) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			text TEXT NOT NULL,
			embedding JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, x.tableName)

	if _, err := x.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (x *Index) Close() {
	x.pool.Close()
}

// Insert stores a record
func (x *Index) Insert(ctx context.Context, text string, embedding []float32) error {
	if err := store.CheckInsert(text, embedding); err != nil {
		return err
	}
	vec, err := json.Marshal(embedding)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (text, embedding) VALUES ($1, $2)`, x.tableName)
	if _, err := x.pool.Exec(ctx, query, text, vec); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Search ranks every stored record against query
func (x *Index) Search(ctx context.Context, query []float32, k int) ([]store.SearchResult, error) {
	if err := store.CheckK(k); err != nil {
		return nil, err
	}

	rows, err := x.pool.Query(ctx, fmt.Sprintf(`SELECT text, embedding FROM %s ORDER BY id`, x.tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		var (
			rec store.Record
			vec []byte
		)
		if err := rows.Scan(&rec.Text, &vec); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal(vec, &rec.Embedding); err != nil {
			return nil, fmt.Errorf("failed to unmarshal embedding: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return store.Rank(records, query, k), nil
}
