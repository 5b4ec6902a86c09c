// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateHelp    State = "help"
	StatePicker  State = "picker"
)

// Bar displays the item count, view mode and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	itemCount int
	mode      domain.ViewMode
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		mode:   domain.ViewFlat,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, count and mode.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StatePicker:
		return s.styles.Normal.Render("Select calendar")
	case StateReady:
	}

	noun := "events"
	if s.itemCount == 1 {
		noun = "event"
	}
	text := fmt.Sprintf("%d %s · %s", s.itemCount, noun, s.mode)
	if s.message != "" {
		text += " · " + s.message
	}
	if s.itemCount == 0 {
		return s.styles.Muted.Render(text)
	}
	return s.styles.Normal.Render(text)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StatePicker:
		bindings = s.keymap.PickerHelp()
	case StateReady:
		bindings = s.keymap.AgendaHelp()
	case StateLoading, StateError, StateHelp:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetItemCount sets the number of displayed events.
func (s *Bar) SetItemCount(count int) {
	s.itemCount = count
}

// ItemCount returns the number of displayed events.
func (s *Bar) ItemCount() int {
	return s.itemCount
}

// SetMode sets the displayed view mode.
func (s *Bar) SetMode(mode domain.ViewMode) {
	s.mode = mode.Normalise()
}

// Mode returns the displayed view mode.
func (s *Bar) Mode() domain.ViewMode {
	return s.mode
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.itemCount = 0
}
