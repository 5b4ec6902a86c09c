package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/agenda-cli/internal/core/ports/driven"
	"github.com/custodia-labs/agenda-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.AccountWatcher = (*Watcher)(nil)

// Watcher notifies when the account file is written, created or replaced.
// The parent directory is watched so editors that save by rename are seen.
type Watcher struct {
	path string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// NewWatcher creates a watcher for the given account file.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: filepath.Clean(path)}
}

// Watch starts watching. Notifications are coalesced: a burst of file
// events produces at least one value on the channel.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, fmt.Errorf("watcher closed")
	}
	if w.watcher != nil {
		return nil, fmt.Errorf("watcher already started")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fw

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fw, changes)
	return changes, nil
}

// loop forwards relevant events until ctx ends or the watcher closes.
// Cancelling ctx releases the fsnotify watcher; Close is still safe after.
func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			if err := fw.Close(); err != nil {
				logger.Warn("closing account watcher: %v", err)
			}
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("account file changed: %s", event)
			select {
			case changes <- struct{}{}:
			default:
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("account watcher: %v", err)
		}
	}
}

// relevant reports whether event touches the account file contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}
