// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): text extraction, the Ollama LLM and
// embedding services, and the persistent vector collection store.
package driven
