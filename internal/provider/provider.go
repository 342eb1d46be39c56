// Package provider supplies data to pages without blocking the frame loop.
//
// Pages call Update(now) from Arrange whenever their refresh interval has
// elapsed. Update must return immediately; slow work runs on a goroutine
// that publishes into a Snapshot, which the page reads on the next frame.
package provider

import (
	"sync/atomic"
	"time"
)

// Provider is refreshed by pages. Update must not block.
type Provider interface {
	Update(now time.Time)
}

// Func adapts a function to Provider.
type Func func(now time.Time)

func (f Func) Update(now time.Time) { f(now) }

// Snapshot holds the latest published value. One goroutine writes, any
// number read.
type Snapshot[T any] struct {
	v       atomic.Pointer[T]
	updated atomic.Int64
}

// Store publishes v.
func (s *Snapshot[T]) Store(v T) {
	s.v.Store(&v)
	s.updated.Store(time.Now().UnixNano())
}

// Load returns the latest value and whether one was ever stored.
func (s *Snapshot[T]) Load() (T, bool) {
	p := s.v.Load()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// UpdatedAt is when the last value was stored, zero if never.
func (s *Snapshot[T]) UpdatedAt() time.Time {
	n := s.updated.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
