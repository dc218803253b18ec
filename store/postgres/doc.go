// Package postgres provides a PostgreSQL-backed vector index built on pgx.
//
// Embeddings are stored as JSONB next to their text and ranked in process.
// NewWithPool accepts any DBPool, which lets tests run against pgxmock.
package postgres
