// Package services implements the core business logic of autos behind the
// driving port interfaces: document ingestion, retrieval-augmented
// answering and the fixed FAQ sequence. Services depend only on domain
// types and driven ports, never on concrete adapters.
package services
