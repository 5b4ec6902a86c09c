package driving

import (
	"context"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// AgendaService runs the agenda pipeline over the current account.
type AgendaService interface {
	// Account returns the current account snapshot.
	Account(ctx context.Context) (*domain.Account, error)

	// Project runs the pipeline for the given view state.
	Project(ctx context.Context, state domain.ViewState) (*domain.AgendaView, error)

	// Options returns the calendar selector entries for the current account.
	Options(ctx context.Context) ([]domain.SelectOption, error)

	// Greeting returns the header greeting for the current time of day.
	Greeting() string

	// Changes returns a channel signalled whenever the account may have
	// changed. Returns domain.ErrNotImplemented if changes are not observable.
	Changes(ctx context.Context) (<-chan struct{}, error)
}
