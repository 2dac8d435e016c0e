package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veredicto-labs/autos/internal/core/ports/driven"
	"github.com/veredicto-labs/autos/internal/logger"
)

// Defaults for the retrieval stage.
const (
	defaultVectorK          = 10
	defaultMaxContextChunks = 3
)

// NoAnswerMessage is returned when the collection yields no candidate
// chunks for a question. No model call is made in that case.
const NoAnswerMessage = "Não há informações disponíveis para responder a esta pergunta."

const ragPromptTemplate = `Instruções: Responda à pergunta com base APENAS nas informações fornecidas no contexto abaixo.
Se a informação necessária não estiver no contexto, diga que não pode responder com base nas informações disponíveis.

Contexto:
%s

Pergunta: %s

Instruções adicionais:
1. Use APENAS as informações do contexto acima para responder.
2. Não use conhecimentos externos ou suposições além do que está no contexto.
3. Se o contexto não fornecer informações suficientes, diga isso claramente.
4. Estruture sua resposta de forma clara e concisa.
5. Se apropriado, cite partes específicas do contexto para apoiar sua resposta.

Resposta:`

// EngineConfig controls the retrieval and re-ranking stages.
type EngineConfig struct {
	// VectorK is the number of chunks fetched from the vector store
	// before lexical re-ranking.
	VectorK int

	// MaxContextChunks caps the chunks assembled into the prompt.
	MaxContextChunks int

	// Rerank controls the widening lexical re-rank pool.
	Rerank RerankConfig
}

// Engine answers questions with two-stage retrieval: vector recall from
// the collection, then term-frequency re-ranking with a widening pool.
// The second stage compensates for embedding-only retrieval surfacing
// semantically near but lexically irrelevant passages.
type Engine struct {
	embedder  driven.EmbeddingService
	generator *Generator
	cfg       EngineConfig
}

// NewEngine creates a new RAG engine.
func NewEngine(embedder driven.EmbeddingService, generator *Generator, cfg EngineConfig) *Engine {
	if cfg.VectorK <= 0 {
		cfg.VectorK = defaultVectorK
	}
	if cfg.MaxContextChunks <= 0 {
		cfg.MaxContextChunks = defaultMaxContextChunks
	}
	return &Engine{
		embedder:  embedder,
		generator: generator,
		cfg:       cfg,
	}
}

// Answer runs the full retrieval-and-generation chain for one question
// against the given collection.
func (e *Engine) Answer(ctx context.Context, question string, coll driven.Collection) (string, error) {
	logger.Section("RAG")
	logger.Debug("Question: %q", question)

	embedding, err := e.embedder.Embed(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embedding question: %w", err)
	}

	results, err := coll.Query(ctx, embedding, e.cfg.VectorK)
	if err != nil {
		return "", fmt.Errorf("querying collection: %w", err)
	}
	if len(results) == 0 {
		logger.Warn("No candidate chunks for question")
		return NoAnswerMessage, nil
	}

	candidates := make([]string, len(results))
	for i, result := range results {
		candidates[i] = result.Chunk.Content
	}

	selected := selectRelevant(question, candidates, e.cfg.Rerank)
	if len(selected) > e.cfg.MaxContextChunks {
		selected = selected[:e.cfg.MaxContextChunks]
	}
	logger.Debug("Selected %d context chunks", len(selected))

	prompt := fmt.Sprintf(ragPromptTemplate, strings.Join(selected, "\n\n"), question)
	return e.generator.Generate(ctx, question, prompt), nil
}
