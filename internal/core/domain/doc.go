// Package domain contains the core entities of autos: documents, chunks,
// classification labels and the ingestion status stream. It has no
// dependencies on adapters or infrastructure.
package domain
