package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veredicto-labs/autos/internal/adapters/driven/storage/memory"
	"github.com/veredicto-labs/autos/internal/chunker"
)

func newMemorySession(store *memory.CollectionStore, llm *mockLLM, embedder *mockEmbedder) *Session {
	generator := NewGenerator(llm)
	engine := NewEngine(embedder, generator, EngineConfig{})

	session := NewSession(
		&mockExtractor{text: legalText},
		NewValidator(llm),
		NewClassifier(llm),
		chunker.New(),
		embedder,
		store,
		engine,
		NewFAQRunner(engine),
	)
	session.now = func() time.Time {
		return time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	}
	return session
}

// Runs the full load-then-ask flow against the real in-memory store
// instead of the scripted mock store.
func TestSession_LoadAndAskWithMemoryStore(t *testing.T) {
	llm := &mockLLM{replies: []string{
		"SIM. Documento jurídico.",
		"Habeas Corpus",
		"Em trâmite",
		"O tribunal decidiu conceder a ordem.",
	}}
	embedder := &mockEmbedder{}
	store := memory.NewCollectionStore()
	session := newMemorySession(store, llm, embedder)

	ctx := context.Background()
	statuses := collectStatuses(session.Load(ctx, "/tmp/autos.pdf"))
	require.NotEmpty(t, statuses)
	require.True(t, statuses[len(statuses)-1].Done())

	// The chunks landed in the named collection with their vectors.
	coll, err := store.CreateOrGet(ctx, "collection_20240301_103000")
	require.NoError(t, err)
	count, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, count, 1)

	chunks, err := coll.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Habeas Corpus", chunks[0].Metadata.CaseType)
	assert.Equal(t, "Em trâmite", chunks[0].Metadata.CaseStatus)

	answer, err := session.Ask(ctx, "O que o tribunal decidiu nos autos?")
	require.NoError(t, err)
	assert.Equal(t, "O tribunal decidiu conceder a ordem.", answer)
}

// A session that never loaded a document resumes the newest collection
// persisted by an earlier session over the same store, so load and ask
// work as separate invocations.
func TestSession_AskResumesPersistedCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCollectionStore()

	loadLLM := &mockLLM{replies: []string{"SIM.", "Habeas Corpus", "Em trâmite"}}
	loader := newMemorySession(store, loadLLM, &mockEmbedder{})
	statuses := collectStatuses(loader.Load(ctx, "/tmp/autos.pdf"))
	require.True(t, statuses[len(statuses)-1].Done())

	askLLM := &mockLLM{replies: []string{"O recurso foi provido."}}
	asker := newMemorySession(store, askLLM, &mockEmbedder{})
	require.Equal(t, "", asker.CollectionName())

	answer, err := asker.Ask(ctx, "Qual foi a decisão do tribunal nos autos?")
	require.NoError(t, err)
	assert.Equal(t, "O recurso foi provido.", answer)
	assert.Equal(t, "collection_20240301_103000", asker.CollectionName())

	// The FAQ also sees the resumed collection's cached classification.
	report, err := asker.RunFAQ(ctx)
	require.NoError(t, err)
	assert.Equal(t, "O tipo de processo/recurso identificado é: Habeas Corpus", report.Answers[0])
}
