package services

import (
	"context"
	"errors"
	"sync"

	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
)

// mockLLM replays scripted replies and records every prompt it saw.
type mockLLM struct {
	mu      sync.Mutex
	replies []string
	err     error
	prompts []string
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(messages) > 0 {
		m.prompts = append(m.prompts, messages[len(messages)-1].Content)
	}
	if m.err != nil {
		return "", m.err
	}
	if len(m.replies) == 0 {
		return "", errors.New("mockLLM: no scripted reply left")
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

func (m *mockLLM) ModelName() string          { return "mock-llm" }
func (m *mockLLM) Ping(context.Context) error { return nil }
func (m *mockLLM) Close() error               { return nil }

func (m *mockLLM) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// mockEmbedder returns fixed-size vectors derived from text length.
type mockEmbedder struct {
	err   error
	calls int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return []float32{float32(len(text)), 1}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (m *mockEmbedder) ModelName() string          { return "mock-embed" }
func (m *mockEmbedder) Ping(context.Context) error { return nil }
func (m *mockEmbedder) Close() error               { return nil }

// mockExtractor returns canned text.
type mockExtractor struct {
	text   string
	err    error
	method domain.ExtractionMethod
}

func (m *mockExtractor) Extract(_ context.Context, _ string, method domain.ExtractionMethod) (string, error) {
	m.method = method
	return m.text, m.err
}

// mockCollection is an in-memory collection with recorded calls.
type mockCollection struct {
	name     string
	chunks   []domain.Chunk
	addErr   error
	queryErr error
}

func (m *mockCollection) Name() string { return m.name }

func (m *mockCollection) Add(_ context.Context, chunks []domain.Chunk) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.chunks = append(m.chunks, chunks...)
	return nil
}

func (m *mockCollection) Query(_ context.Context, _ []float32, k int) ([]domain.QueryResult, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	results := make([]domain.QueryResult, 0, len(m.chunks))
	for i, chunk := range m.chunks {
		if i >= k {
			break
		}
		results = append(results, domain.QueryResult{Chunk: chunk, Distance: float64(i) / 10})
	}
	return results, nil
}

func (m *mockCollection) Get(_ context.Context, limit int) ([]domain.Chunk, error) {
	if limit <= 0 || limit > len(m.chunks) {
		limit = len(m.chunks)
	}
	return m.chunks[:limit], nil
}

func (m *mockCollection) Count(context.Context) (int, error) {
	return len(m.chunks), nil
}

// mockStore hands out mockCollections keyed by name.
type mockStore struct {
	collections map[string]*mockCollection
	names       []string
	createErr   error
	listErr     error
}

func newMockStore() *mockStore {
	return &mockStore{collections: make(map[string]*mockCollection)}
}

func (m *mockStore) CreateOrGet(_ context.Context, name string) (driven.Collection, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if coll, ok := m.collections[name]; ok {
		return coll, nil
	}
	coll := &mockCollection{name: name}
	m.collections[name] = coll
	m.names = append(m.names, name)
	return coll, nil
}

func (m *mockStore) ListCollections(context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	names := make([]string, len(m.names))
	for i, name := range m.names {
		names[len(m.names)-1-i] = name
	}
	return names, nil
}

func (m *mockStore) Close() error { return nil }
