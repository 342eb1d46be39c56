package settings

import (
	"context"
	"log/slog"
	"sync"
)

// Store owns the settings file. Saves requested from the UI goroutine are
// queued and written by Run; when several arrive before the writer wakes,
// only the latest is written.
type Store struct {
	Path string

	logger  *slog.Logger
	mu      sync.Mutex
	pending *Options
	wake    chan struct{}
	saved   chan struct{}
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		Path:   path,
		logger: logger.With("component", "settings"),
		wake:   make(chan struct{}, 1),
		saved:  make(chan struct{}, 1),
	}
}

// Load reads the current file.
func (s *Store) Load() (Options, error) {
	return Load(s.Path)
}

// Queue schedules o to be written. It never blocks.
func (s *Store) Queue(o Options) {
	s.mu.Lock()
	s.pending = &o
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Saved is signalled after each write attempt. Used by tests.
func (s *Store) Saved() <-chan struct{} {
	return s.saved
}

// Run writes queued options until ctx is done, then flushes what is left.
func (s *Store) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.flush()
			return
		case <-s.wake:
			s.flush()
		}
	}
}

func (s *Store) flush() {
	s.mu.Lock()
	o := s.pending
	s.pending = nil
	s.mu.Unlock()
	if o == nil {
		return
	}
	if err := Save(s.Path, *o); err != nil {
		s.logger.Error("save settings failed", "path", s.Path, "error", err)
	} else {
		s.logger.Debug("settings saved", "path", s.Path)
	}
	select {
	case s.saved <- struct{}{}:
	default:
	}
}
