package driven

import "context"

// LLMService is a stateless client for an external chat-completion
// endpoint. Calls are synchronous and blocking; a slow backend blocks the
// calling stage.
//
// Implementations may include:
//   - Ollama (local models, the default)
//   - any endpoint speaking the same chat message shape
type LLMService interface {
	// Chat sends an ordered list of role/content messages and returns the
	// assistant message content.
	Chat(ctx context.Context, messages []ChatMessage) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}
