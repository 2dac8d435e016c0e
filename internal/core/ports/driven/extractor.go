package driven

import (
	"context"

	"github.com/veredicto-labs/autos/internal/core/domain"
)

// Extractor turns a PDF file into plain text.
//
// Implementations run external recognition tooling and must honour the
// configured recognition language. They return domain.ErrExtractionFailed
// (wrapped) on any failure: corrupt file, missing tool, or recognition
// error. Callers treat whitespace-only output the same as a failure.
type Extractor interface {
	// Extract returns the full text of the PDF at pdfPath using the
	// selected extraction strategy.
	Extract(ctx context.Context, pdfPath string, method domain.ExtractionMethod) (string, error)
}
