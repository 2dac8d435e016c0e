package driving

import (
	"context"
	"iter"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

// IngestService loads a document into a fresh collection, reporting staged
// progress. Loading a new document supersedes the previous collection; the
// old collection stays on disk but is no longer referenced.
type IngestService interface {
	// Load runs the ingestion pipeline for the PDF at pdfPath and yields
	// one status event per stage. The sequence is finite and ends with a
	// done or failed event. Each call restarts the pipeline from scratch.
	Load(ctx context.Context, pdfPath string) iter.Seq[domain.IngestStatus]

	// SetMethod selects the extraction strategy for subsequent loads.
	SetMethod(method domain.ExtractionMethod) error

	// Method returns the currently selected extraction strategy.
	Method() domain.ExtractionMethod
}

// AskService answers a free-text question about the currently loaded
// document.
type AskService interface {
	// Ask returns the generated answer. Without an active collection it
	// returns a user-guidance message and makes no backend call.
	Ask(ctx context.Context, question string) (string, error)
}

// FAQService runs the fixed question sequence against the currently
// loaded document.
type FAQService interface {
	// RunFAQ returns the formatted report of all question/answer pairs.
	RunFAQ(ctx context.Context) (domain.FAQReport, error)
}
