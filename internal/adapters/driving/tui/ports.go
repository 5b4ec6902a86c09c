// Package tui provides an interactive terminal user interface for the agenda.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Agenda runs the pipeline and reports account changes.
	Agenda driving.AgendaService

	// ViewState holds the calendar selector and view mode.
	ViewState driving.ViewStateService

	// Location renders event timestamps. Nil means local time.
	Location *time.Location
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(agenda driving.AgendaService, viewState driving.ViewStateService) *Ports {
	return &Ports{
		Agenda:    agenda,
		ViewState: viewState,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Agenda == nil {
		return ErrMissingAgendaService
	}
	if p.ViewState == nil {
		return ErrMissingViewStateService
	}
	return nil
}
