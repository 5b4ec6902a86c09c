package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
)

// Ensure ViewStateService implements the interface.
var _ driving.ViewStateService = (*ViewStateService)(nil)

// ViewStateService manages the calendar selector and view mode.
// When a store is configured, every change is persisted; otherwise state
// lives only for the life of the service.
type ViewStateService struct {
	mu       sync.Mutex
	store    driven.ViewStateStore
	defaults domain.ViewState
	current  *domain.ViewState
	now      func() time.Time
}

// NewViewStateService creates a new view state service.
// store may be nil.
func NewViewStateService(store driven.ViewStateStore, defaults domain.ViewState) *ViewStateService {
	if !defaults.Mode.IsValid() {
		defaults.Mode = domain.ViewFlat
	}
	if defaults.Selector == "" {
		defaults.Selector = domain.SelectAll
	}
	return &ViewStateService{
		store:    store,
		defaults: defaults,
		now:      time.Now,
	}
}

// Current returns the active view state.
func (s *ViewStateService) Current(ctx context.Context) (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SelectCalendar changes the calendar selector. The view mode is kept.
func (s *ViewStateService) SelectCalendar(
	ctx context.Context,
	selector domain.CalendarSelector,
) (domain.ViewState, error) {
	return s.update(ctx, func(state domain.ViewState) (domain.ViewState, error) {
		return state.WithSelector(selector), nil
	})
}

// SetMode sets the view mode. The selector is kept.
func (s *ViewStateService) SetMode(ctx context.Context, mode domain.ViewMode) (domain.ViewState, error) {
	return s.update(ctx, func(state domain.ViewState) (domain.ViewState, error) {
		if !mode.IsValid() {
			return state, fmt.Errorf("%w: %q", domain.ErrInvalidViewMode, mode)
		}
		state.Mode = mode
		return state, nil
	})
}

// ToggleView switches between flat and grouped. The selector is kept.
func (s *ViewStateService) ToggleView(ctx context.Context) (domain.ViewState, error) {
	return s.update(ctx, func(state domain.ViewState) (domain.ViewState, error) {
		return state.Toggled(), nil
	})
}

// Reset restores the configured defaults.
func (s *ViewStateService) Reset(ctx context.Context) (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			return domain.ViewState{}, fmt.Errorf("clearing view state: %w", err)
		}
	}
	state := s.defaults
	s.current = &state
	return state, nil
}

// update applies fn to the current state and persists the result
// (caller must not hold lock).
func (s *ViewStateService) update(
	ctx context.Context,
	fn func(domain.ViewState) (domain.ViewState, error),
) (domain.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return domain.ViewState{}, err
	}

	next, err := fn(state)
	if err != nil {
		return state, err
	}
	next.UpdatedAt = s.now()

	if s.store != nil {
		if err := s.store.Save(ctx, next); err != nil {
			return state, fmt.Errorf("saving view state: %w", err)
		}
	}
	s.current = &next
	return next, nil
}

// load returns the cached state, reading the store on first use
// (caller must hold lock).
func (s *ViewStateService) load(ctx context.Context) (domain.ViewState, error) {
	if s.current != nil {
		return *s.current, nil
	}

	state := s.defaults
	if s.store != nil {
		stored, err := s.store.Get(ctx)
		if err != nil {
			return domain.ViewState{}, fmt.Errorf("loading view state: %w", err)
		}
		if stored != nil {
			state = *stored
			state.Mode = state.Mode.Normalise()
			if state.Selector == "" {
				state.Selector = domain.SelectAll
			}
		}
	}

	s.current = &state
	return state, nil
}
