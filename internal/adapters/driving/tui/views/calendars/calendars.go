// Package calendars provides the calendar picker view for the TUI.
package calendars

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// View lists the calendar selector options with their colours.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	options []domain.SelectOption
	current domain.CalendarSelector

	selected int
	width    int
	height   int
}

// NewView creates a new calendar picker.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		current: domain.SelectAll,
		width:   80,
	}
}

// SetOptions loads the options and highlights the current selector.
func (v *View) SetOptions(options []domain.SelectOption, current domain.CalendarSelector) {
	v.options = options
	v.current = current
	v.selected = max(agenda.OptionIndex(options, current), 0)
}

// Update handles messages for the picker.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.options)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		if len(v.options) == 0 {
			return v, nil
		}
		selector := v.options[v.selected].Value
		return v, func() tea.Msg {
			return messages.CalendarSelected{Selector: selector}
		}
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewAgenda}
		}
	}
	return v, nil
}

// View renders the picker.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Calendars"))
	b.WriteString("\n\n")

	if len(v.options) == 0 {
		b.WriteString(v.styles.Muted.Render("No calendars."))
	}

	for i, opt := range v.options {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		marker := " "
		if opt.Value == v.current {
			marker = "*"
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s ● %s", indicator, marker, opt.Label)))
		} else {
			b.WriteString(v.styles.Normal.Render(indicator+marker+" ") +
				v.styles.Swatch(opt.Color) + " " +
				v.styles.Calendar(opt.Color).Render(opt.Label))
		}
		if opt.Value != domain.SelectAll {
			b.WriteString(v.styles.Muted.Render("  " + string(opt.Value)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] select  [esc] back  [q] quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SelectedIndex returns the highlighted option index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Options returns the loaded options.
func (v *View) Options() []domain.SelectOption {
	return v.options
}
