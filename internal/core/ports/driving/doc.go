// Package driving provides interfaces consumed by presentation adapters
// (primary/inbound ports). The CLI, TUI and MCP surfaces depend on these
// three session operations and nothing else.
package driving
