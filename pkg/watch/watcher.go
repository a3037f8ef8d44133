// Package watch re-runs work whenever local VAST samples change. It backs
// the CLI's watch command, a tight loop for ad-server integration tests:
// edit a sample, get the restitched output immediately.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultPattern matches the files a VAST sample directory typically
// holds.
const DefaultPattern = "**/*.xml"

// Watcher observes a directory tree and reports changed files matching a
// doublestar pattern.
type Watcher struct {
	dir      string
	pattern  string
	logger   *slog.Logger
	debounce time.Duration
}

// New creates a Watcher for dir. An empty pattern falls back to
// DefaultPattern.
func New(dir, pattern string, logger *slog.Logger) (*Watcher, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:      dir,
		pattern:  pattern,
		logger:   logger,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Run watches until ctx is cancelled, sending the path of each changed
// matching file on changed. Editors emit bursts of events per save, so
// paths are debounced before delivery.
func (w *Watcher) Run(ctx context.Context, changed chan<- string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw); err != nil {
		return err
	}

	deb := newDebouncer(w.debounce)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, fsw, event, deb, changed)

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, fsw *fsnotify.Watcher, event fsnotify.Event, deb *debouncer, changed chan<- string) {
	w.logger.Debug("event received", "name", event.Name, "op", event.Op)

	// New directories must be watched as they appear.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = fsw.Add(event.Name)
			return
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.matches(event.Name) {
		return
	}

	deb.add(event.Name, func(path string) {
		select {
		case changed <- path:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) matches(path string) bool {
	rel, err := filepath.Rel(w.dir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	return err == nil && ok
}

func (w *Watcher) addRecursive(fsw *fsnotify.Watcher) error {
	return filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}
