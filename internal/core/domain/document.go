package domain

import "time"

// ExtractionMethod selects the strategy used to pull text out of a PDF.
type ExtractionMethod string

const (
	// MethodOCR runs the PDF through ocrmypdf to produce a searchable PDF,
	// then extracts the embedded text layer.
	MethodOCR ExtractionMethod = "ocrmypdf"

	// MethodImage renders each page to an image and runs character
	// recognition on it. Slower, but works on PDFs ocrmypdf rejects.
	MethodImage ExtractionMethod = "pdf2image"
)

// Valid reports whether the method is one of the known strategies.
func (m ExtractionMethod) Valid() bool {
	return m == MethodOCR || m == MethodImage
}

// Document represents a legal-case PDF during ingestion.
// It is ephemeral: once its chunks are persisted the document is discarded.
type Document struct {
	// Path is the location of the source PDF on disk.
	Path string

	// Text is the full extracted text before chunking.
	Text string

	// Classification holds the per-document case labels. Every chunk
	// derived from this document carries an identical copy.
	Classification ClassificationResult
}

// ChunkMetadata is attached to every chunk of an ingested document.
// All chunks of one document share identical metadata.
type ChunkMetadata struct {
	// Source is the path of the PDF the chunk was extracted from.
	Source string `json:"source"`

	// CaseType is the classified case-type label (tipo de processo).
	CaseType string `json:"tipo_processo"`

	// CaseStatus is the classified case-status label (situação).
	CaseStatus string `json:"situacao"`
}

// Chunk is a bounded contiguous slice of document text, the unit of
// indexing and retrieval. Immutable once created.
type Chunk struct {
	// ID is a random unique identifier assigned at ingestion time.
	ID string

	// Content is the text of this chunk.
	Content string

	// Position is the ordinal position within the source document.
	Position int

	// Embedding is the vector representation used for similarity search.
	Embedding []float32

	// Metadata carries the per-document classification labels.
	Metadata ChunkMetadata
}

// QueryResult is one ranked hit from a collection query.
type QueryResult struct {
	// Chunk is the matched chunk with its metadata.
	Chunk Chunk

	// Distance is the cosine distance to the query vector (smaller is nearer).
	Distance float64
}

// Exchange is one question/answer pair from the session history,
// kept by the presentation layer.
type Exchange struct {
	Question string
	Answer   string
	Elapsed  time.Duration
}

// CollectionName derives the name for a fresh collection from the
// ingestion timestamp, ensuring uniqueness across ingestions.
func CollectionName(t time.Time) string {
	return "collection_" + t.Format("20060102_150405")
}
