package domain

import (
	"fmt"
	"time"
)

// CalendarSelector selects which calendar's events are shown.
// It holds either a calendar ID or the wildcard SelectAll.
type CalendarSelector string

// SelectAll is the wildcard selector meaning "no filtering".
const SelectAll CalendarSelector = "all"

// IsAll returns true if the selector disables filtering.
// The empty selector is treated as the wildcard.
func (s CalendarSelector) IsAll() bool {
	return s == SelectAll || s == ""
}

// String returns the string representation.
func (s CalendarSelector) String() string {
	return string(s)
}

// ViewMode is the agenda presentation mode.
type ViewMode string

// Available view modes.
const (
	// ViewFlat shows the filtered, date-ordered list.
	ViewFlat ViewMode = "flat"

	// ViewGrouped shows all events grouped by department.
	ViewGrouped ViewMode = "grouped"
)

// IsValid returns true if the view mode is recognised.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewFlat, ViewGrouped:
		return true
	default:
		return false
	}
}

// Toggle returns the other view mode. Unknown modes toggle to grouped,
// since they are treated as flat.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGrouped {
		return ViewFlat
	}
	return ViewGrouped
}

// Normalise returns the mode, or ViewFlat if the mode is not recognised.
func (m ViewMode) Normalise() ViewMode {
	if m.IsValid() {
		return m
	}
	return ViewFlat
}

// String returns the string representation.
func (m ViewMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ViewMode) Description() string {
	switch m {
	case ViewFlat:
		return "Flat (filtered by calendar)"
	case ViewGrouped:
		return "Grouped (by department)"
	default:
		return "Unknown"
	}
}

// ParseViewMode parses a view mode string.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
	}
	return m, nil
}

// AllViewModes returns all available view modes.
func AllViewModes() []ViewMode {
	return []ViewMode{ViewFlat, ViewGrouped}
}

// ViewState is the user-interaction state driving the pipeline.
type ViewState struct {
	// Selector is the last selected calendar filter.
	Selector CalendarSelector

	// Mode is the active presentation mode.
	Mode ViewMode

	// UpdatedAt is when the state last changed.
	UpdatedAt time.Time
}

// DefaultViewState returns the initial state: all calendars, flat.
func DefaultViewState() ViewState {
	return ViewState{
		Selector: SelectAll,
		Mode:     ViewFlat,
	}
}

// WithSelector returns a copy of the state with a new selector.
// The view mode is left untouched.
func (s ViewState) WithSelector(sel CalendarSelector) ViewState {
	if sel == "" {
		sel = SelectAll
	}
	s.Selector = sel
	return s
}

// Toggled returns a copy of the state with the view mode switched.
// The selector is preserved.
func (s ViewState) Toggled() ViewState {
	s.Mode = s.Mode.Toggle()
	return s
}
