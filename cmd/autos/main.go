// Command autos is the entry point wiring adapters to core services.
package main

import (
	"fmt"
	"os"

	"github.com/veredicto-labs/autos/internal/adapters/driven/config/file"
	embeddingollama "github.com/veredicto-labs/autos/internal/adapters/driven/embedding/ollama"
	"github.com/veredicto-labs/autos/internal/adapters/driven/extractor/pdf"
	llmollama "github.com/veredicto-labs/autos/internal/adapters/driven/llm/ollama"
	"github.com/veredicto-labs/autos/internal/adapters/driven/storage/sqlite"
	"github.com/veredicto-labs/autos/internal/adapters/driving/cli"
	"github.com/veredicto-labs/autos/internal/chunker"
	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := file.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := file.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("opening collection store: %w", err)
	}
	defer store.Close()

	llm := llmollama.NewLLMService(llmollama.LLMConfig{
		BaseURL: cfg.Ollama.Host,
		Model:   cfg.Ollama.Model,
	})
	embedder := embeddingollama.NewEmbeddingService(embeddingollama.EmbeddingConfig{
		BaseURL: cfg.Ollama.Host,
		Model:   cfg.Ollama.EmbeddingModel,
	})
	extractor := pdf.New(pdf.Config{
		Language: cfg.Extraction.Language,
	})

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.Chunking.Size),
		chunker.WithOverlap(cfg.Chunking.Overlap),
	)

	validator := services.NewValidator(llm)
	classifier := services.NewClassifier(llm)
	generator := services.NewGenerator(llm)
	engine := services.NewEngine(embedder, generator, services.EngineConfig{
		VectorK:          cfg.RAG.VectorK,
		MaxContextChunks: cfg.RAG.MaxContextChunks,
		Rerank: services.RerankConfig{
			InitialK:            cfg.RAG.InitialK,
			StepK:               cfg.RAG.StepK,
			MaxK:                cfg.RAG.MaxK,
			SimilarityThreshold: cfg.RAG.SimilarityThreshold,
		},
	})
	faq := services.NewFAQRunner(engine)

	session := services.NewSession(
		extractor, validator, classifier, splitter, embedder, store, engine, faq,
	)
	if cfg.Extraction.Method != "" {
		if err := session.SetMethod(domain.ExtractionMethod(cfg.Extraction.Method)); err != nil {
			return fmt.Errorf("configured extraction method: %w", err)
		}
	}

	cli.SetVersion(version)
	cli.SetServices(cli.ServiceConfig{
		Ingest:     session,
		Ask:        session,
		FAQ:        session,
		ChatModel:  cfg.Ollama.Model,
		EmbedModel: cfg.Ollama.EmbeddingModel,
	})

	return cli.Execute()
}
