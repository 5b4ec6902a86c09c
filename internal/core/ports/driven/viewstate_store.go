package driven

import (
	"context"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// ViewStateStore persists the user's calendar selector and view mode.
type ViewStateStore interface {
	// Get retrieves the stored view state.
	// Returns nil and no error if nothing has been stored yet.
	Get(ctx context.Context) (*domain.ViewState, error)

	// Save stores the view state, replacing any previous value.
	Save(ctx context.Context, state domain.ViewState) error

	// Clear removes the stored view state.
	Clear(ctx context.Context) error
}
