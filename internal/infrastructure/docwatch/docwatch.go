// Package docwatch notifies document holders when another process replaces
// a document file.
package docwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/logging"
)

const defaultDebounce = 50 * time.Millisecond

// Watcher implements port.DocumentWatcher with fsnotify.
//
// The parent directory is watched rather than the file itself: an atomic
// persist replaces the file's inode, which would silently end a watch placed
// on the file.
type Watcher struct {
	debounce time.Duration
}

var _ port.DocumentWatcher = (*Watcher)(nil)

// New creates a Watcher that coalesces bursts of events arriving within
// debounce of each other. Zero selects the default.
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch blocks until ctx is cancelled, calling onChange after path is
// created, written, or renamed into place.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		return &entity.StorageError{Op: "watch", Path: dir, Err: err}
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", path).Msg("watching document")

	target := filepath.Clean(path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			log.Trace().Str("op", event.Op.String()).Str("file", event.Name).Msg("document event")
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", path).Msg("document watcher error")
		case <-timer.C:
			onChange()
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	if entity.IsConcurrencyArtifact(event.Name) {
		return false
	}
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename)
}
