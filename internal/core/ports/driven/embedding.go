package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The single-text and batch forms are separate methods rather than one
// polymorphic input; batch output preserves input order. An unreachable
// backend surfaces as domain.ErrEmbeddingUnavailable (wrapped), never as a
// silent empty vector.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, one vector per
	// input in matching order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
