package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/views/agenda"
	"github.com/custodia-labs/agenda-cli/internal/adapters/driving/tui/views/calendars"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

// watchStarted carries the account change channel once subscribed.
type watchStarted struct {
	changes <-chan struct{}
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// agendaView is the main agenda list.
	agendaView *agenda.View

	// calendarsView is the calendar picker.
	calendarsView *calendars.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// changes signals account file changes; nil when not watching.
	changes <-chan struct{}

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	agendaView := agenda.NewView(s, km, ports.Agenda, ports.ViewState)
	if ports.Location != nil {
		agendaView.SetLocation(ports.Location)
	}

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		agendaView:    agendaView,
		calendarsView: calendars.NewView(s, km),
		currentView:   messages.ViewAgenda,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.agendaView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("agenda"),
		a.agendaView.Init(),
		a.watchAccount(),
	)
}

// watchAccount subscribes to account changes.
func (a *App) watchAccount() tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Agenda
	return func() tea.Msg {
		changes, err := svc.Changes(ctx)
		if errors.Is(err, domain.ErrNotImplemented) {
			return nil
		}
		if err != nil {
			logger.Warn("not watching account: %v", err)
			return nil
		}
		return watchStarted{changes: changes}
	}
}

// waitForChange blocks until the account changes.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.AccountChanged{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case watchStarted:
		a.changes = msg.changes
		return a, waitForChange(a.changes)

	case messages.AccountChanged:
		a.agendaView.Status().SetMessage("reloaded")
		return a, tea.Batch(a.agendaView.Reload(), waitForChange(a.changes))

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.CalendarSelected:
		a.currentView = messages.ViewAgenda
		return a, a.agendaView.SelectCalendar(msg.Selector)

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit

	case messages.AgendaLoaded:
		a.agendaView, cmd = a.agendaView.Update(msg)
		a.err = a.agendaView.Err()
		if a.currentView == messages.ViewCalendars {
			a.calendarsView.SetOptions(a.agendaView.Options(), a.agendaView.State().Selector)
		}
		return a, cmd
	}

	a.agendaView, cmd = a.agendaView.Update(msg)
	return a, cmd
}

// handleKeyMsg routes key presses to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewHelp:
		if keymap.Matches(key, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(key, a.keymap.Back) || keymap.Matches(key, a.keymap.Help) {
			return a, a.switchTo(messages.ViewAgenda)
		}
		return a, nil

	case messages.ViewCalendars:
		if keymap.Matches(key, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.calendarsView, cmd = a.calendarsView.Update(msg)
		return a, cmd

	case messages.ViewAgenda:
		if keymap.Matches(key, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(key, a.keymap.Help) {
			return a, a.switchTo(messages.ViewHelp)
		}
		a.agendaView, cmd = a.agendaView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// switchTo changes the active view.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	bar := a.agendaView.Status()

	switch view {
	case messages.ViewCalendars:
		a.calendarsView.SetOptions(a.agendaView.Options(), a.agendaView.State().Selector)
		bar.SetState(status.StatePicker)
	case messages.ViewHelp:
		bar.SetState(status.StateHelp)
	case messages.ViewAgenda:
		if a.agendaView.Err() != nil {
			bar.SetState(status.StateError)
		} else {
			bar.SetState(status.StateReady)
		}
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCalendars:
		return a.calendarsView.View() + "\n\n" + a.agendaView.Status().View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewAgenda:
		return a.agendaView.View()
	}
	return a.agendaView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to agenda"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Agenda returns the last projected agenda.
func (a *App) Agenda() *domain.AgendaView {
	return a.agendaView.Agenda()
}

// State returns the view state the agenda was last projected with.
func (a *App) State() domain.ViewState {
	return a.agendaView.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.agendaView.SetDimensions(width, height)
	a.calendarsView.SetDimensions(width, height)
}
