package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval groups the burst of events editors produce when
// saving a file.
const DefaultDebounceInterval = 500 * time.Millisecond

// Watcher calls back whenever one manifest file changes on disk.
//
// The file's directory is watched rather than the file itself, so atomic
// saves (write to a temp file, rename over the original) keep being seen.
type Watcher struct {
	path             string
	debounceInterval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for path. A zero debounceInterval selects
// DefaultDebounceInterval.
func NewWatcher(path string, debounceInterval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve manifest path %s: %w", path, err)
	}
	if debounceInterval == 0 {
		debounceInterval = DefaultDebounceInterval
	}
	return &Watcher{path: abs, debounceInterval: debounceInterval}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch blocks until ctx is done, calling onChange after every debounced
// change of the file. onChange runs on the watching goroutine, so changes
// that arrive while it runs are coalesced into one further call.
func (w *Watcher) Watch(ctx context.Context, onChange func(ctx context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Info(subsystem, "Watching %s for changes", w.path)

	trigger := make(chan struct{}, 1)
	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			logging.Debug(subsystem, "Stopped watching %s", w.path)
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				w.debounce(trigger)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Error(subsystem, err, "File watcher error")

		case <-trigger:
			logging.Debug(subsystem, "Manifest %s changed", w.path)
			onChange(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// debounce restarts the timer; when it fires a single trigger is queued.
func (w *Watcher) debounce(trigger chan<- struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceInterval, func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
