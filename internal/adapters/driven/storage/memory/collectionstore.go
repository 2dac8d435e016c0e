// Package memory provides in-memory implementations of driven port
// interfaces, useful for testing and ephemeral sessions.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
)

// Ensure interface compliance.
var (
	_ driven.CollectionStore = (*CollectionStore)(nil)
	_ driven.Collection      = (*collection)(nil)
)

// CollectionStore is an in-memory collection store.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]*collection

	// names keeps creation order so listing can be newest first.
	names []string
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string]*collection),
	}
}

// CreateOrGet returns the named collection, creating it if necessary.
func (s *CollectionStore) CreateOrGet(_ context.Context, name string) (driven.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty collection name", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if coll, ok := s.collections[name]; ok {
		return coll, nil
	}

	coll := &collection{name: name, ids: make(map[string]bool)}
	s.collections[name] = coll
	s.names = append(s.names, name)
	return coll, nil
}

// ListCollections returns every collection name, newest first.
func (s *CollectionStore) ListCollections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.names))
	for i, name := range s.names {
		names[len(s.names)-1-i] = name
	}
	return names, nil
}

// Close releases resources.
func (s *CollectionStore) Close() error {
	return nil
}

// collection is an in-memory chunk collection.
type collection struct {
	mu     sync.RWMutex
	name   string
	chunks []domain.Chunk
	ids    map[string]bool
}

// Name returns the collection identifier.
func (c *collection) Name() string {
	return c.name
}

// Add appends the chunks. Either all chunks are added or none.
func (c *collection) Add(_ context.Context, chunks []domain.Chunk) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool, len(chunks))
	for _, chunk := range chunks {
		if c.ids[chunk.ID] || seen[chunk.ID] {
			return fmt.Errorf("%w: duplicate chunk id %s", domain.ErrInvalidInput, chunk.ID)
		}
		seen[chunk.ID] = true
	}

	for _, chunk := range chunks {
		c.chunks = append(c.chunks, chunk)
		c.ids[chunk.ID] = true
	}
	return nil
}

// Query returns the k nearest chunks by cosine distance, nearest first.
func (c *collection) Query(_ context.Context, embedding []float32, k int) ([]domain.QueryResult, error) {
	if k <= 0 {
		return nil, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]domain.QueryResult, 0, len(c.chunks))
	for _, chunk := range c.chunks {
		results = append(results, domain.QueryResult{
			Chunk:    chunk,
			Distance: cosineDistance(embedding, chunk.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Get returns up to limit chunks in insertion order. limit <= 0 means all.
func (c *collection) Get(_ context.Context, limit int) ([]domain.Chunk, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.chunks)
	if limit > 0 && limit < n {
		n = limit
	}

	chunks := make([]domain.Chunk, n)
	copy(chunks, c.chunks[:n])
	return chunks, nil
}

// Count returns the number of chunks in the collection.
func (c *collection) Count(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.chunks), nil
}

// cosineDistance returns 1 minus the cosine similarity of a and b.
func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
