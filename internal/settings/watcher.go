package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads the settings file when it changes and publishes the result.
// Its goroutine is the only writer; readers call Current from any goroutine.
type Watcher struct {
	Path     string
	Debounce time.Duration

	logger  *slog.Logger
	current atomic.Pointer[Options]
	version atomic.Uint64
}

// NewWatcher starts out publishing initial.
func NewWatcher(path string, initial Options, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		Path:     path,
		Debounce: defaultDebounce,
		logger:   logger.With("component", "settings-watcher"),
	}
	w.publish(initial)
	return w
}

// Current returns the latest options and a version that increases on each
// reload.
func (w *Watcher) Current() (Options, uint64) {
	return *w.current.Load(), w.version.Load()
}

func (w *Watcher) publish(o Options) {
	w.current.Store(&o)
	w.version.Add(1)
}

// Run watches the settings directory until ctx is done. Editors that replace
// the file rather than writing it in place are handled by watching the
// directory.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	target := filepath.Clean(w.Path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("settings watch error", "error", err)
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	o, err := read(w.Path)
	if err != nil {
		w.logger.Warn("settings reload failed", "path", w.Path, "error", err)
		return
	}
	w.logger.Info("settings reloaded", "path", w.Path, "scheme", o.ColorScheme)
	w.publish(o)
}
