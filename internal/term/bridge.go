package term

import (
	"log/slog"
	"sync/atomic"

	"mfd/internal/mfd"
	"mfd/internal/theme"
)

// DefaultEventBuffer is how many events may queue between two frames.
const DefaultEventBuffer = 64

// Bridge connects the bubbletea goroutines to the frame loop. Input flows
// through a buffered channel; frames flow back through an atomic string.
// Neither side ever waits on the other.
type Bridge struct {
	canvas  *Canvas
	events  chan mfd.Event
	frame   atomic.Pointer[string]
	dropped atomic.Int64
	logger  *slog.Logger

	schemeOf func() theme.Scheme
	scheme   atomic.Pointer[theme.Scheme]
}

// NewBridge returns a bridge presenting canvas.
func NewBridge(canvas *Canvas, buffer int, logger *slog.Logger) *Bridge {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bridge{
		canvas: canvas,
		events: make(chan mfd.Event, buffer),
		logger: logger.With("component", "term"),
	}
	empty := ""
	b.frame.Store(&empty)
	return b
}

// Send queues ev for the next frame. When the queue is full the event is
// dropped and false is returned.
func (b *Bridge) Send(ev mfd.Event) bool {
	select {
	case b.events <- ev:
		return true
	default:
		n := b.dropped.Add(1)
		b.logger.Warn("input dropped", "kind", ev.Kind.String(), "key", string(ev.Key), "dropped", n)
		return false
	}
}

// Dropped counts events lost to a full queue.
func (b *Bridge) Dropped() int64 { return b.dropped.Load() }

// Poll drains the queue without blocking.
func (b *Bridge) Poll() []mfd.Event {
	var out []mfd.Event
	for {
		select {
		case ev := <-b.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// TrackScheme makes Present also publish the scheme returned by f, so the
// help footer can match the display. f runs on the frame loop goroutine.
func (b *Bridge) TrackScheme(f func() theme.Scheme) {
	b.schemeOf = f
}

// Present renders the canvas and publishes it for View.
func (b *Bridge) Present() {
	s := b.canvas.Render()
	b.frame.Store(&s)
	if b.schemeOf != nil {
		cs := b.schemeOf()
		b.scheme.Store(&cs)
	}
}

// Scheme is the scheme published with the last frame.
func (b *Bridge) Scheme() (theme.Scheme, bool) {
	p := b.scheme.Load()
	if p == nil {
		return theme.Scheme{}, false
	}
	return *p, true
}

// Frame is the last presented frame.
func (b *Bridge) Frame() string {
	return *b.frame.Load()
}
