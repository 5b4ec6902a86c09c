package tui

import "errors"

// ErrMissingAgendaService is returned when the agenda service is not provided.
var ErrMissingAgendaService = errors.New("tui: agenda service is required")

// ErrMissingViewStateService is returned when the view state service is not provided.
var ErrMissingViewStateService = errors.New("tui: view state service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
