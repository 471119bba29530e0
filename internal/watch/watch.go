// Package watch reruns a callback when files under a directory change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Filter reports whether a changed path is interesting.
type Filter func(path string) bool

// Handler receives the deduplicated, sorted paths of one debounced batch.
type Handler func(paths []string) error

// Watcher watches a directory tree and batches changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	delay  time.Duration
	filter Filter
	logger *zap.Logger
}

// New creates a Watcher that waits delay after the last change before
// calling the handler. A nil filter accepts every path.
func New(delay time.Duration, filter Filter, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{fsw: fsw, delay: delay, filter: filter, logger: logger}, nil
}

// AddRecursive watches root and every directory below it, skipping hidden
// directories.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run blocks until ctx is done, calling h once per quiet period after
// matching changes. Handler errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, h Handler) error {
	defer w.fsw.Close()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.watchNewDir(event.Name)
			}
			if event.Op == fsnotify.Chmod || !w.filter(event.Name) {
				continue
			}
			pending[event.Name] = true
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]bool)

			w.logger.Debug("changes detected", zap.Strings("paths", paths))
			if err := h(paths); err != nil {
				w.logger.Error("watch handler failed", zap.Error(err))
			}
		}
	}
}

// watchNewDir adds directories created after Run started.
func (w *Watcher) watchNewDir(path string) {
	if err := w.AddRecursive(path); err != nil {
		w.logger.Debug("not watching new path", zap.String("path", path), zap.Error(err))
	}
}
