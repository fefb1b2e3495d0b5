// Package watch re-runs a refresh callback when the database file changes
// on disk. It backs the live report mode, where another process owns the
// write lock and this one re-reads on every update.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/penwyp/tasktally/internal/util"
)

const defaultDebounce = 250 * time.Millisecond

// Config configures a file watcher.
type Config struct {
	// Path is the file to watch.
	Path string

	// Debounce collapses bursts of write events into one refresh.
	Debounce time.Duration
}

// Watcher triggers a callback when the watched file changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	refresh  func()
}

// New creates a watcher for cfg.Path that invokes refresh after each
// debounced change.
func New(cfg Config, refresh func()) (*Watcher, error) {
	if cfg.Debounce == 0 {
		cfg.Debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// Watch the directory: database engines may replace the file, which
	// drops a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(cfg.Path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", cfg.Path, err)
	}

	return &Watcher{
		fsw:      fsw,
		path:     filepath.Clean(cfg.Path),
		debounce: cfg.Debounce,
		refresh:  refresh,
	}, nil
}

// Run blocks, refreshing on changes, until the context is cancelled.
// The callback fires once up front so the first render never waits for a
// write.
func (w *Watcher) Run(ctx context.Context) error {
	w.refresh()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			util.LogDebugf("Database changed (%s), scheduling refresh", event.Op)
			if pending {
				if !timer.Stop() {
					<-timer.C
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.refresh()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			util.LogWarnf("Watcher error: %v", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
