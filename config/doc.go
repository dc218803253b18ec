// Package config reads the environment and builds the collaborators the
// graphs need: the chat model, the embedder, the vector index and the logger.
//
// Values come from the process environment, optionally seeded from .env
// files. Variables already set in the environment win over file entries.
package config
