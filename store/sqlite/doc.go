// Package sqlite provides a SQLite-backed vector index.
//
// Each record is a row holding the text and its JSON-encoded embedding. Rows
// are read back ordered by their autoincrement id, which preserves insertion
// order for tie breaking.
//
//	idx, err := sqlite.New(sqlite.Options{Path: "./memories.db"})
//	defer idx.Close()
package sqlite
