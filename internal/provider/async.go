package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// FetchFunc produces a fresh value. It may block; Async runs it off the
// frame loop.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Async is a Provider that runs a fetch on its own goroutine at most once per
// Interval and never more than one at a time. Successful results land in
// Data; errors are logged and the previous value stays visible.
type Async[T any] struct {
	Name     string
	Interval time.Duration
	Data     Snapshot[T]

	fetch    FetchFunc[T]
	ctx      context.Context
	logger   *slog.Logger
	inflight atomic.Bool
	lastErr  atomic.Pointer[error]
	started  time.Time
	fetches  atomic.Int64
}

// NewAsync creates an async provider. ctx bounds every fetch; cancel it on
// shutdown.
func NewAsync[T any](ctx context.Context, name string, interval time.Duration, fetch FetchFunc[T], logger *slog.Logger) *Async[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Async[T]{
		Name:     name,
		Interval: interval,
		fetch:    fetch,
		ctx:      ctx,
		logger:   logger.With("provider", name),
	}
}

// Update starts a fetch if the interval has elapsed and none is running.
func (a *Async[T]) Update(now time.Time) {
	if !a.started.IsZero() && now.Sub(a.started) < a.Interval {
		return
	}
	if !a.inflight.CompareAndSwap(false, true) {
		return
	}
	a.started = now
	go a.run()
}

func (a *Async[T]) run() {
	defer a.inflight.Store(false)
	defer func() {
		a.fetches.Add(1)
		if r := recover(); r != nil {
			err := fmt.Errorf("fetch panicked: %v", r)
			a.lastErr.Store(&err)
			a.logger.Error("provider fetch panicked", "panic", r)
		}
	}()
	v, err := a.fetch(a.ctx)
	if err != nil {
		a.lastErr.Store(&err)
		a.logger.Warn("provider fetch failed", "error", err)
		return
	}
	a.lastErr.Store(nil)
	a.Data.Store(v)
}

// Invalidate makes the next Update fetch regardless of the interval. Call
// it from the same goroutine as Update.
func (a *Async[T]) Invalidate() { a.started = time.Time{} }

// Busy reports whether a fetch is running.
func (a *Async[T]) Busy() bool { return a.inflight.Load() }

// Fetches is the number of completed fetch calls, successful or not.
func (a *Async[T]) Fetches() int64 { return a.fetches.Load() }

// Err returns the error from the most recent fetch, nil after a success.
func (a *Async[T]) Err() error {
	if p := a.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}
