// Package watch re-runs a callback when any of a set of input files
// changes on disk.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by renaming a temporary file over the original are
// still seen. Bursts of events are collapsed into one callback after a
// quiet period.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches a fixed set of files.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	logger   *slog.Logger
	ready    chan struct{}
}

// New creates a watcher for paths. A non-positive debounce means
// DefaultDebounce; a nil logger means slog.Default().
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("watch: no paths given")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		logger:   logger,
		ready:    make(chan struct{}),
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: resolving %s: %w", p, err)
		}

		w.files[abs] = struct{}{}

		if dir := filepath.Dir(abs); !slices.Contains(w.dirs, dir) {
			w.dirs = append(w.dirs, dir)
		}
	}

	return w, nil
}

// Ready is closed once the watches are in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run blocks until ctx is done, calling onChange after every settled burst
// of changes. Callback errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}

	defer func() {
		_ = fsw.Close()
	}()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch: adding %s: %w", dir, err)
		}
	}

	close(w.ready)
	w.logger.Info("watching for changes", "files", len(w.files), "debounce_ms", w.debounce.Milliseconds())

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	pending := ""

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("watch: events channel closed")
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			pending = event.Name

			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Info("change detected, regenerating", "path", pending)

			if err := onChange(ctx); err != nil {
				w.logger.Error("regeneration failed", "error", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watch: errors channel closed")
			}

			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	_, ok := w.files[filepath.Clean(event.Name)]

	return ok
}
