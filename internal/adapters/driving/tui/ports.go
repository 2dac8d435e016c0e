package tui

import (
	"errors"

	"github.com/veredicto-labs/autos/internal/core/ports/driving"
)

// Errors returned when a required port is not provided.
var (
	ErrMissingAskService = errors.New("tui: ask service is required")
	ErrMissingFAQService = errors.New("tui: faq service is required")
)

// Ports aggregates the driving port interfaces required by the chat TUI.
type Ports struct {
	// Ask answers free-text questions about the loaded document.
	Ask driving.AskService

	// FAQ runs the fixed question sequence.
	FAQ driving.FAQService

	// Ingest is optional, used only to show the active extraction method
	// in the status bar.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.FAQ == nil {
		return ErrMissingFAQService
	}
	return nil
}
