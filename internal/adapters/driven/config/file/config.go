// Package file provides TOML-based configuration loading. Settings are
// stored in a user-editable file, with sensible defaults for a local
// Ollama setup when the file or a key is absent.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the full application configuration.
type Config struct {
	Ollama     OllamaConfig     `toml:"ollama"`
	Extraction ExtractionConfig `toml:"extraction"`
	Chunking   ChunkingConfig   `toml:"chunking"`
	RAG        RAGConfig        `toml:"rag"`
	Data       DataConfig       `toml:"data"`
}

// OllamaConfig holds Ollama connection and model settings.
type OllamaConfig struct {
	// Host is the Ollama API base URL.
	Host string `toml:"host"`

	// Model is the chat model used for validation, classification and
	// answer generation.
	Model string `toml:"model"`

	// EmbeddingModel is the model used for vector embeddings.
	EmbeddingModel string `toml:"embedding_model"`
}

// ExtractionConfig holds PDF text recognition settings.
type ExtractionConfig struct {
	// Language is the tesseract language code.
	Language string `toml:"language"`

	// Method selects the default extraction strategy: "ocrmypdf" or
	// "pdf2image".
	Method string `toml:"method"`
}

// ChunkingConfig holds text splitting settings.
type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

// RAGConfig holds retrieval and re-ranking settings.
type RAGConfig struct {
	// VectorK is the number of chunks fetched from the vector store.
	VectorK int `toml:"vector_k"`

	// InitialK, StepK and MaxK control the widening re-rank pool.
	InitialK int `toml:"initial_k"`
	StepK    int `toml:"step_k"`
	MaxK     int `toml:"max_k"`

	// SimilarityThreshold is the mean pairwise lexical similarity at
	// which pool widening stops.
	SimilarityThreshold float64 `toml:"similarity_threshold"`

	// MaxContextChunks is the number of re-ranked chunks passed to the
	// answer prompt.
	MaxContextChunks int `toml:"max_context_chunks"`
}

// DataConfig holds storage location settings.
type DataConfig struct {
	// Dir is the directory for the collection database. Empty means
	// ~/.autos/data.
	Dir string `toml:"dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Ollama: OllamaConfig{
			Host:           "http://localhost:11434",
			Model:          "gemma2:2b",
			EmbeddingModel: "nomic-embed-text",
		},
		Extraction: ExtractionConfig{
			Language: "por",
			Method:   "ocrmypdf",
		},
		Chunking: ChunkingConfig{
			Size:    1000,
			Overlap: 200,
		},
		RAG: RAGConfig{
			VectorK:             10,
			InitialK:            5,
			StepK:               5,
			MaxK:                20,
			SimilarityThreshold: 0.3,
			MaxContextChunks:    3,
		},
		Data: DataConfig{},
	}
}

// DefaultPath returns ~/.autos/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".autos", "config.toml"), nil
}

// Load reads the configuration at path, applying defaults for any key the
// file omits. A missing file yields the defaults without error. If path is
// empty, the default path is used.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshalling over the defaults keeps them for absent keys.
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories. If
// path is empty, the default path is used.
func Save(cfg Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Write with restricted permissions
	return os.WriteFile(path, data, 0600)
}
