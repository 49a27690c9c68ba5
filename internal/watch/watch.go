// Package watch reindexes the transcript when the file changes on
// disk. Events are debounced because editors typically emit several
// writes per save.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/scribe-cli/internal/logger"
)

// DefaultDebounce is the quiet period after the last event before a
// rebuild triggers.
const DefaultDebounce = 500 * time.Millisecond

// Watcher triggers analyst rebuilds on document changes.
type Watcher struct {
	analyst  driving.Analyst
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New creates a watcher for the document at path. The parent
// directory is watched rather than the file itself so rename-based
// saves keep working.
func New(analyst driving.Analyst, path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving document path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		analyst:  analyst,
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
	}, nil
}

// Run blocks processing events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	logger.Info("Watching %s for changes", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Document event: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-fire:
			timer = nil
			fire = nil
			logger.Info("Document changed, rebuilding index")
			if err := w.analyst.Rebuild(ctx); err != nil {
				logger.Warn("Rebuild after change failed: %v", err)
			}
		}
	}
}

// relevant reports whether the event concerns the watched document
// and can change its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}
