// Package store holds the vector index contract used by the memory subsystem
// and the ranking shared by its backends.
//
// A VectorIndex stores text together with its embedding and answers
// nearest-neighbour queries by cosine similarity. Records are append-only:
// there is no update or delete.
//
// Backends live in sub-packages:
//
//   - inmemory: a slice guarded by a RWMutex
//   - redis: one JSON record per list entry (go-redis)
//   - sqlite: a table in a SQLite file (mattn/go-sqlite3)
//   - postgres: a table in PostgreSQL (pgx)
//
// Every backend ranks with Rank, so results are identical across backends:
// most similar first, ties broken by insertion order.
package store
