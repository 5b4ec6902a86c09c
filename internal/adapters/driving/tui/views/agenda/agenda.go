// Package agenda provides the agenda view component for the TUI.
package agenda

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/styles"
	coreagenda "github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
)

// headerLines is the space taken by the greeting header and status bar.
const headerLines = 4

// View shows the greeting, the current selector and the projected agenda.
type View struct {
	ctx              context.Context
	styles           *styles.Styles
	keymap           *keymap.KeyMap
	agendaService    driving.AgendaService
	viewStateService driving.ViewStateService

	list   *list.EventList
	status *status.Bar

	state    domain.ViewState
	view     *domain.AgendaView
	options  []domain.SelectOption
	greeting string
	err      error
	loading  bool
	width    int
	height   int
}

// NewView creates a new agenda view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	agendaService driving.AgendaService,
	viewStateService driving.ViewStateService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		ctx:              context.Background(),
		styles:           s,
		keymap:           km,
		agendaService:    agendaService,
		viewStateService: viewStateService,
		list:             list.NewEventList(s),
		status:           status.NewBar(s, km),
		state:            domain.DefaultViewState(),
		width:            80,
		height:           24,
	}
}

// SetContext sets the context used by service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// SetLocation sets the timezone used to render timestamps.
func (v *View) SetLocation(loc *time.Location) {
	v.list.SetLocation(loc)
}

// Init loads the agenda.
func (v *View) Init() tea.Cmd {
	return v.Reload()
}

// Reload returns a command that re-runs the pipeline for the stored state.
func (v *View) Reload() tea.Cmd {
	v.loading = true
	v.status.SetState(status.StateLoading)

	ctx := v.ctx
	agendaService := v.agendaService
	viewStateService := v.viewStateService
	return func() tea.Msg {
		if agendaService == nil || viewStateService == nil {
			return messages.AgendaLoaded{Err: fmt.Errorf("agenda service not available")}
		}

		state, err := viewStateService.Current(ctx)
		if err != nil {
			return messages.AgendaLoaded{Err: err}
		}
		view, err := agendaService.Project(ctx, state)
		if err != nil {
			return messages.AgendaLoaded{Err: err}
		}
		options, err := agendaService.Options(ctx)
		if err != nil {
			return messages.AgendaLoaded{Err: err}
		}
		return messages.AgendaLoaded{
			View:     view,
			Options:  options,
			Greeting: agendaService.Greeting(),
		}
	}
}

// SelectCalendar returns a command that persists a new selector.
func (v *View) SelectCalendar(selector domain.CalendarSelector) tea.Cmd {
	ctx := v.ctx
	svc := v.viewStateService
	return func() tea.Msg {
		if svc == nil {
			return messages.ViewStateChanged{Err: fmt.Errorf("view state service not available")}
		}
		state, err := svc.SelectCalendar(ctx, selector)
		return messages.ViewStateChanged{State: state, Err: err}
	}
}

// toggleView returns a command that flips the view mode.
func (v *View) toggleView() tea.Cmd {
	ctx := v.ctx
	svc := v.viewStateService
	return func() tea.Msg {
		if svc == nil {
			return messages.ViewStateChanged{Err: fmt.Errorf("view state service not available")}
		}
		state, err := svc.ToggleView(ctx)
		return messages.ViewStateChanged{State: state, Err: err}
	}
}

// Update handles messages for the agenda view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.AgendaLoaded:
		v.loading = false
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.view = msg.View
		v.options = msg.Options
		v.greeting = msg.Greeting
		if msg.View != nil {
			v.state = domain.ViewState{Selector: msg.View.Selector, Mode: msg.View.Mode}
		}
		v.list.SetView(msg.View)
		v.status.SetState(status.StateReady)
		v.status.SetMessage("")
		v.status.SetItemCount(v.list.Count())
		v.status.SetMode(v.state.Mode)
		return v, nil

	case messages.ViewStateChanged:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.state = msg.State
		return v, v.Reload()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.NextCalendar):
		next := coreagenda.NextSelector(v.options, v.state.Selector)
		return v, v.SelectCalendar(next)
	case keymap.Matches(key, v.keymap.ToggleView):
		return v, v.toggleView()
	case keymap.Matches(key, v.keymap.Picker):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCalendars}
		}
	case keymap.Matches(key, v.keymap.Reload):
		return v, v.Reload()
	case keymap.Matches(key, v.keymap.Up), keymap.Matches(key, v.keymap.Down):
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

func (v *View) setError(err error) {
	v.err = err
	v.status.SetState(status.StateError)
	v.status.SetMessage(err.Error())
}

// View renders the agenda view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.loading && v.view == nil:
		b.WriteString(v.styles.Muted.Render("Loading agenda..."))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.status.View())
	return b.String()
}

// renderHeader renders "Good morning   ● Calendar #1".
func (v *View) renderHeader() string {
	greeting := v.greeting
	if greeting == "" {
		greeting = "Agenda"
	}

	label := coreagenda.LabelFor(v.options, v.state.Selector)
	colour := domain.DefaultColor
	if i := coreagenda.OptionIndex(v.options, v.state.Selector); i >= 0 {
		colour = v.options[i].Color
	}

	return v.styles.Title.Render(greeting) + "   " +
		v.styles.Swatch(colour) + " " +
		v.styles.Calendar(colour).Render(label) +
		v.styles.Muted.Render(" · "+v.state.Mode.Description())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
	v.list.SetDimensions(width, max(height-headerLines, 1))
}

// State returns the view state the agenda was last projected with.
func (v *View) State() domain.ViewState {
	return v.state
}

// Options returns the calendar selector options.
func (v *View) Options() []domain.SelectOption {
	return v.options
}

// Agenda returns the last projected agenda.
func (v *View) Agenda() *domain.AgendaView {
	return v.view
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Loading reports whether a reload is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Status returns the status bar (for the app to adjust state).
func (v *View) Status() *status.Bar {
	return v.status
}
