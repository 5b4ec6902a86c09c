package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	// Services return it when a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidViewMode indicates an unrecognised view mode string.
	ErrInvalidViewMode = errors.New("invalid view mode")

	// ErrInvalidTimezone indicates a display timezone that cannot be loaded.
	ErrInvalidTimezone = errors.New("invalid timezone")
)
