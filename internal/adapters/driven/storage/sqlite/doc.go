// Package sqlite provides a SQLite-backed implementation of the collection
// store driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Embedding vectors are
// stored as little-endian float32 blobs alongside the chunk text and
// metadata, and similarity queries scan the collection and rank by cosine
// distance in process. Collections from one document ingestion are small
// enough that a linear scan beats maintaining an index.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.autos/data/collections.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
