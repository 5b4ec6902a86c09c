package driving

import (
	"context"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// ViewStateService manages the calendar selector and view mode.
type ViewStateService interface {
	// Current returns the active view state.
	Current(ctx context.Context) (domain.ViewState, error)

	// SelectCalendar changes the calendar selector. The view mode is kept.
	SelectCalendar(ctx context.Context, selector domain.CalendarSelector) (domain.ViewState, error)

	// SetMode sets the view mode. The selector is kept.
	SetMode(ctx context.Context, mode domain.ViewMode) (domain.ViewState, error)

	// ToggleView switches between flat and grouped. The selector is kept.
	ToggleView(ctx context.Context) (domain.ViewState, error)

	// Reset restores the configured defaults.
	Reset(ctx context.Context) (domain.ViewState, error)
}
