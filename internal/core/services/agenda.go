package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/agenda"
	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driving"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

// Ensure AgendaService implements the interface.
var _ driving.AgendaService = (*AgendaService)(nil)

// AgendaService runs the agenda pipeline over snapshots from an AccountSource.
type AgendaService struct {
	accountSource driven.AccountSource
	watcher       driven.AccountWatcher
	location      *time.Location
	now           func() time.Time
}

// NewAgendaService creates a new agenda service.
func NewAgendaService(accountSource driven.AccountSource) *AgendaService {
	return &AgendaService{
		accountSource: accountSource,
		location:      time.Local,
		now:           time.Now,
	}
}

// SetWatcher sets the watcher used to observe account changes.
func (s *AgendaService) SetWatcher(watcher driven.AccountWatcher) {
	s.watcher = watcher
}

// SetLocation sets the location used to derive the greeting hour.
func (s *AgendaService) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	s.location = loc
}

// SetClock replaces the time source (for testing).
func (s *AgendaService) SetClock(now func() time.Time) {
	s.now = now
}

// Account returns the current account snapshot.
// A source that yields no account is treated as an empty account.
func (s *AgendaService) Account(ctx context.Context) (*domain.Account, error) {
	if s.accountSource == nil {
		return nil, domain.ErrNotImplemented
	}
	account, err := s.accountSource.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	if account == nil {
		logger.Warn("account source returned no account, using empty account")
		return &domain.Account{}, nil
	}
	return account, nil
}

// Project runs the pipeline for the given view state.
func (s *AgendaService) Project(ctx context.Context, state domain.ViewState) (*domain.AgendaView, error) {
	account, err := s.Account(ctx)
	if err != nil {
		return nil, err
	}

	logger.Section("Agenda")
	logger.Debug("mode=%s selector=%s", state.Mode.Normalise(), state.Selector)
	logger.Stage("aggregate", account.CalendarCount(), account.EventCount())

	view := agenda.Project(account, state)

	if view.Mode == domain.ViewGrouped {
		logger.Stage("group", account.EventCount(), len(view.Buckets))
	} else {
		if !agenda.HasCalendar(account.Calendars, view.Selector) {
			logger.Warn("calendar %q not found, showing no events", view.Selector)
		}
		logger.Stage("filter", account.EventCount(), len(view.Items))
	}

	return &view, nil
}

// Options returns the calendar selector entries for the current account.
func (s *AgendaService) Options(ctx context.Context) ([]domain.SelectOption, error) {
	account, err := s.Account(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.Options(account.Calendars), nil
}

// Greeting returns the header greeting for the current time of day.
func (s *AgendaService) Greeting() string {
	return domain.Greeting(s.now().In(s.location).Hour())
}

// Changes returns the watcher's notification channel.
func (s *AgendaService) Changes(ctx context.Context) (<-chan struct{}, error) {
	if s.watcher == nil {
		return nil, domain.ErrNotImplemented
	}
	changes, err := s.watcher.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("watching account: %w", err)
	}
	return changes, nil
}
