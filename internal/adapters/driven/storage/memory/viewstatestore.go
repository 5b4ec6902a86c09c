package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
)

// Ensure ViewStateStore implements the interface.
var _ driven.ViewStateStore = (*ViewStateStore)(nil)

// ViewStateStore is an in-memory implementation of driven.ViewStateStore.
type ViewStateStore struct {
	mu    sync.RWMutex
	state *domain.ViewState
}

// NewViewStateStore creates a new in-memory view state store.
func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{}
}

// Get retrieves the stored view state, or nil if none is stored.
func (s *ViewStateStore) Get(_ context.Context) (*domain.ViewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, nil
	}
	state := *s.state
	return &state, nil
}

// Save stores the view state.
func (s *ViewStateStore) Save(_ context.Context, state domain.ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &state
	return nil
}

// Clear removes the stored view state.
func (s *ViewStateStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}
