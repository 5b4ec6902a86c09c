package cli

import (
	"bytes"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/services"
)

func testAccount() *domain.Account {
	day := func(h int) time.Time { return time.Date(2026, 10, 18, h, 0, 0, 0, time.UTC) }
	return &domain.Account{
		Calendars: []domain.Calendar{
			{ID: "A", Name: "Work", Color: "blue", Events: []domain.Event{
				{ID: "1", Title: "Standup", Date: day(10), Department: "Eng"},
				{ID: "2", Title: "Lunch", Date: day(9)},
			}},
			{ID: "B", Color: "red", Events: []domain.Event{
				{ID: "3", Title: "Review", Date: day(8), Department: "Eng"},
			}},
		},
	}
}

// setupTestServices wires real services over in-memory stores and returns
// a cleanup function that restores the package state.
func setupTestServices() func() {
	agenda := services.NewAgendaService(memory.NewAccountSource(testAccount()))
	agenda.SetLocation(time.UTC)
	agenda.SetClock(func() time.Time { return time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC) })

	viewState := services.NewViewStateService(memory.NewViewStateStore(), domain.DefaultViewState())
	settings := services.NewSettingsService(memory.NewConfigStore())

	SetServices(agenda, viewState, settings)
	SetLocation(time.UTC)

	return resetState
}

// resetState clears services and flag values between tests.
func resetState() {
	SetServices(nil, nil, nil)
	SetLocation(nil)
	serviceBuilder = nil
	cleanupServices = nil
	verbose = false
	accountPath = ""
	listCalendar = ""
	listGroup = false
	listJSON = false
	calendarsJSON = false
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
