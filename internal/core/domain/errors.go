package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionFailed indicates no usable text was recovered from the
	// PDF. Recovered locally: ingestion aborts with a user message.
	ErrExtractionFailed = errors.New("no usable text extracted from PDF")

	// ErrValidationRejected indicates the document is outside the legal
	// domain. Ingestion aborts; no partial collection is created.
	ErrValidationRejected = errors.New("document rejected by context validation")

	// ErrEmbeddingUnavailable indicates the embedding backend is
	// unreachable. Fatal to ingestion; nothing is persisted.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the chat backend is unreachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrNoActiveCollection indicates a question was asked before any
	// document was successfully ingested. No backend call is attempted.
	ErrNoActiveCollection = errors.New("no active collection")
)
