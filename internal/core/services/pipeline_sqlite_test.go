package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veredicto-labs/autos/internal/adapters/driven/storage/sqlite"
	"github.com/veredicto-labs/autos/internal/chunker"
)

func newSQLiteSession(t *testing.T, dataDir string, llm *mockLLM) (*Session, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.NewStore(dataDir)
	require.NoError(t, err)

	embedder := &mockEmbedder{}
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
	return session, store
}

// Loading in one process and asking in the next works: the second session
// resumes the newest collection from the reopened database.
func TestSession_AskAfterLoadAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()

	loadLLM := &mockLLM{replies: []string{"SIM.", "Habeas Corpus", "Em trâmite"}}
	loader, loadStore := newSQLiteSession(t, dataDir, loadLLM)
	statuses := collectStatuses(loader.Load(ctx, "/tmp/autos.pdf"))
	require.NotEmpty(t, statuses)
	require.True(t, statuses[len(statuses)-1].Done())
	require.NoError(t, loadStore.Close())

	askLLM := &mockLLM{replies: []string{"A ordem foi concedida."}}
	asker, askStore := newSQLiteSession(t, dataDir, askLLM)
	defer askStore.Close()

	answer, err := asker.Ask(ctx, "O que o tribunal decidiu nos autos?")
	require.NoError(t, err)
	assert.Equal(t, "A ordem foi concedida.", answer)
	assert.NotEmpty(t, asker.CollectionName())
	assert.Equal(t, 1, askLLM.callCount())
}
