// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAgenda is the agenda list.
	ViewAgenda ViewType = iota
	// ViewCalendars is the calendar picker.
	ViewCalendars
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAgenda:
		return "agenda"
	case ViewCalendars:
		return "calendars"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// AgendaLoaded carries a freshly projected agenda.
type AgendaLoaded struct {
	View     *domain.AgendaView
	Options  []domain.SelectOption
	Greeting string
	Err      error
}

// ViewStateChanged carries the view state after a selector or mode change.
type ViewStateChanged struct {
	State domain.ViewState
	Err   error
}

// CalendarSelected is sent when a calendar is picked.
type CalendarSelected struct {
	Selector domain.CalendarSelector
}

// AccountChanged signals that the account file changed on disk.
type AccountChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
