package driven

import (
	"context"

	"github.com/custodia-labs/agenda-cli/internal/core/domain"
)

// AccountSource supplies the account snapshot consumed by the pipeline.
// Each call returns a fresh snapshot; callers must not mutate it.
type AccountSource interface {
	// Load returns the current account snapshot.
	// Returns domain.ErrNotFound if no account is available.
	Load(ctx context.Context) (*domain.Account, error)
}

// AccountWatcher notifies when the account snapshot may have changed.
type AccountWatcher interface {
	// Watch starts watching and returns a channel that receives a value
	// each time the account changes. The channel is closed when ctx is
	// cancelled or the watcher is closed.
	Watch(ctx context.Context) (<-chan struct{}, error)

	// Close stops the watcher and releases resources.
	Close() error
}
