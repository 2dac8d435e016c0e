package driven

import (
	"context"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

// CollectionStore persists named collections of chunks with their
// embedding vectors. Collections survive process restarts and are never
// automatically pruned; superseded collections simply stop being
// referenced.
type CollectionStore interface {
	// CreateOrGet returns the collection with the given name, creating it
	// if necessary. Idempotent: calling twice with the same name yields a
	// handle to the same underlying collection.
	CreateOrGet(ctx context.Context, name string) (Collection, error)

	// ListCollections returns the names of all collections, newest first.
	// A fresh session resumes the most recent non-empty collection from
	// here.
	ListCollections(ctx context.Context) ([]string, error)

	// Close releases the underlying storage.
	Close() error
}

// Collection is a named, persistent grouping of chunks and vectors.
// Append-only: chunks are added during one ingestion and only queried
// afterwards.
type Collection interface {
	// Name returns the collection identifier.
	Name() string

	// Add persists the chunks in a single transaction. Either every chunk
	// is committed or none is. Chunk IDs must be unique.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Query returns the k nearest chunks to the query vector by cosine
	// distance, nearest first.
	Query(ctx context.Context, embedding []float32, k int) ([]domain.QueryResult, error)

	// Get returns up to limit chunks in insertion order, for metadata
	// introspection without a similarity search. limit <= 0 means all.
	Get(ctx context.Context, limit int) ([]domain.Chunk, error)

	// Count returns the number of chunks in the collection.
	Count(ctx context.Context) (int, error)
}
