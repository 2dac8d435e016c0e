// Package mcp provides an MCP (Model Context Protocol) server adapter for
// autos. It lets AI assistants load a legal PDF and question it through
// the session's driving ports.
package mcp

import "errors"

// Errors returned when a required port is not provided.
var (
	ErrMissingIngestService = errors.New("mcp: ingest service is required")
	ErrMissingAskService    = errors.New("mcp: ask service is required")
	ErrMissingFAQService    = errors.New("mcp: faq service is required")
)
