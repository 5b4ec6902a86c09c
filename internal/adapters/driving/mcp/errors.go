// Package mcp provides an MCP (Model Context Protocol) server adapter for the agenda.
// It lets AI assistants read the agenda and the calendar selector options.
package mcp

import "errors"

// ErrMissingAgendaService is returned when the agenda service is not provided.
var ErrMissingAgendaService = errors.New("mcp: agenda service is required")
