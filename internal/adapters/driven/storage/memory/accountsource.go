package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
)

// Ensure AccountSource implements the interface.
var _ driven.AccountSource = (*AccountSource)(nil)

// AccountSource is an in-memory implementation of driven.AccountSource.
// Load hands out a deep copy so callers can never mutate the held account.
type AccountSource struct {
	mu      sync.RWMutex
	account *domain.Account
}

// NewAccountSource creates a source holding the given account (may be nil).
func NewAccountSource(account *domain.Account) *AccountSource {
	return &AccountSource{account: cloneAccount(account)}
}

// Load returns a copy of the held account.
// Returns domain.ErrNotFound if no account is held.
func (s *AccountSource) Load(_ context.Context) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == nil {
		return nil, domain.ErrNotFound
	}
	return cloneAccount(s.account), nil
}

// Replace swaps the held account.
func (s *AccountSource) Replace(account *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = cloneAccount(account)
}

// cloneAccount deep-copies an account's calendars and events.
func cloneAccount(account *domain.Account) *domain.Account {
	if account == nil {
		return nil
	}
	out := &domain.Account{
		Name:      account.Name,
		Calendars: make([]domain.Calendar, len(account.Calendars)),
	}
	for i, cal := range account.Calendars {
		cal.Events = append([]domain.Event(nil), cal.Events...)
		out.Calendars[i] = cal
	}
	return out
}
