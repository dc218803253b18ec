// Package redis provides a Redis-backed vector index.
//
// Records are JSON-encoded and appended to a single list with RPUSH, so an
// insert is one atomic command and list order is insertion order. Search reads
// the list and ranks it in process, which suits the small fact sets a
// conversation memory holds.
//
//	idx, err := redis.New(redis.Options{URL: "redis://localhost:6379/0"})
//	err = idx.Insert(ctx, "the user is called Alex", vec)
//	hits, err := idx.Search(ctx, query, 3)
package redis
