package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// mockAgendaService is a mock implementation of driving.AgendaService
// that runs the real pipeline over a fixed account.
type mockAgendaService struct {
	account *domain.Account
	err     error
	states  []domain.ViewState
}

func (m *mockAgendaService) Account(_ context.Context) (*domain.Account, error) {
	return m.account, m.err
}

func (m *mockAgendaService) Project(_ context.Context, state domain.ViewState) (*domain.AgendaView, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.states = append(m.states, state)
	view := agenda.Project(m.account, state)
	return &view, nil
}

func (m *mockAgendaService) Options(_ context.Context) ([]domain.SelectOption, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.account == nil {
		return agenda.Options(nil), nil
	}
	return agenda.Options(m.account.Calendars), nil
}

func (m *mockAgendaService) Greeting() string {
	return "Good morning"
}

func (m *mockAgendaService) Changes(_ context.Context) (<-chan struct{}, error) {
	return nil, domain.ErrNotImplemented
}

// mockViewStateService is a mock implementation of driving.ViewStateService.
type mockViewStateService struct {
	state domain.ViewState
	err   error
}

func (m *mockViewStateService) Current(_ context.Context) (domain.ViewState, error) {
	return m.state, m.err
}

func (m *mockViewStateService) SelectCalendar(
	_ context.Context, selector domain.CalendarSelector,
) (domain.ViewState, error) {
	m.state = m.state.WithSelector(selector)
	return m.state, m.err
}

func (m *mockViewStateService) SetMode(_ context.Context, mode domain.ViewMode) (domain.ViewState, error) {
	m.state.Mode = mode
	return m.state, m.err
}

func (m *mockViewStateService) ToggleView(_ context.Context) (domain.ViewState, error) {
	m.state = m.state.Toggled()
	return m.state, m.err
}

func (m *mockViewStateService) Reset(_ context.Context) (domain.ViewState, error) {
	m.state = domain.DefaultViewState()
	return m.state, m.err
}

// testAccount is the two-calendar account used across the MCP tests.
func testAccount() *domain.Account {
	day := func(h int) time.Time { return time.Date(2026, 10, 18, h, 0, 0, 0, time.UTC) }
	return &domain.Account{
		Calendars: []domain.Calendar{
			{ID: "A", Name: "Work", Color: "blue", Events: []domain.Event{
				{ID: "1", Title: "Standup", Date: day(10), Department: "Eng"},
				{ID: "2", Title: "Lunch", Date: day(9), Location: "Cafe"},
			}},
			{ID: "B", Color: "red", Events: []domain.Event{
				{ID: "3", Title: "Review", Date: day(8), Department: "Eng"},
			}},
		},
	}
}
