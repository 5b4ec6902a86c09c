package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
)

// viewStateStore implements driven.ViewStateStore.
type viewStateStore struct {
	store *Store
}

var _ driven.ViewStateStore = (*viewStateStore)(nil)

// Get retrieves the persisted view state.
// Returns nil and no error if nothing has been saved.
func (s *viewStateStore) Get(ctx context.Context) (*domain.ViewState, error) {
	var (
		selector  string
		mode      string
		updatedAt string
	)

	row := s.store.db.QueryRowContext(ctx, `
		SELECT selector, mode, updated_at FROM view_state WHERE id = 1
	`)
	if err := row.Scan(&selector, &mode, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying view state: %w", err)
	}

	state := &domain.ViewState{
		Selector: domain.CalendarSelector(selector),
		Mode:     domain.ViewMode(mode).Normalise(),
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		state.UpdatedAt = t
	}
	return state, nil
}

// Save persists the view state, replacing any previous one.
func (s *viewStateStore) Save(ctx context.Context, state domain.ViewState) error {
	selector := state.Selector
	if selector == "" {
		selector = domain.SelectAll
	}
	updatedAt := state.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO view_state (id, selector, mode, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			selector = excluded.selector,
			mode = excluded.mode,
			updated_at = excluded.updated_at
	`, string(selector), state.Mode.Normalise().String(), updatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving view state: %w", err)
	}
	return nil
}

// Clear removes the persisted view state.
func (s *viewStateStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM view_state"); err != nil {
		return fmt.Errorf("clearing view state: %w", err)
	}
	return nil
}
