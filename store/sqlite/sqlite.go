package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Prateek-Kumar98217/langraph-test/store"
)

// Index implements store.VectorIndex using SQLite
type Index struct {
	db        *sql.DB
	tableName string
}

var _ store.VectorIndex = (*Index)(nil)

// Options configuration for SQLite connection
type Options struct {
	Path      string
	TableName string // Default "memories"
}

// New opens (or creates) the database and its table
func New(opts Options) (*Index, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if opts.Path == ":memory:" {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "memories"
	}

	idx := &Index{db: db, tableName: tableName}
	if err := idx.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return idx, nil
}

// InitSchema creates the necessary table if it doesn't exist
func (x *Index) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			embedding TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`, x.tableName)

	if _, err := x.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (x *Index) Close() error {
	return x.db.Close()
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

	query := fmt.Sprintf(`INSERT INTO %s (text, embedding) VALUES (?, ?)`, x.tableName)
	if _, err := x.db.ExecContext(ctx, query, text, string(vec)); err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// Search ranks every stored record against query
func (x *Index) Search(ctx context.Context, query []float32, k int) ([]store.SearchResult, error) {
	if err := store.CheckK(k); err != nil {
		return nil, err
	}

	rows, err := x.db.QueryContext(ctx, fmt.Sprintf(`SELECT text, embedding FROM %s ORDER BY id`, x.tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		var (
			rec store.Record
			vec string
		)
		if err := rows.Scan(&rec.Text, &vec); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(vec), &rec.Embedding); err != nil {
			return nil, fmt.Errorf("failed to unmarshal embedding: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return store.Rank(records, query, k), nil
}

// Count returns the number of stored records
func (x *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := x.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, x.tableName)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
