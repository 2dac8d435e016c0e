package mcp

import (
	"github.com/veredicto-labs/autos/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest loads documents into collections.
	Ingest driving.IngestService

	// Ask answers free-text questions about the loaded document.
	Ask driving.AskService

	// FAQ runs the fixed question sequence.
	FAQ driving.FAQService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.FAQ == nil {
		return ErrMissingFAQService
	}
	return nil
}
