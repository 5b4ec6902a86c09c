package mcp

import (
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Agenda runs the pipeline.
	Agenda driving.AgendaService

	// ViewState supplies the saved selector and mode. Optional; when nil
	// requests start from the default view state.
	ViewState driving.ViewStateService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Agenda == nil {
		return ErrMissingAgendaService
	}
	return nil
}
