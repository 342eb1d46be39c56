package mfd

import (
	"fmt"

	"mfd/internal/ui"
)

// EventKind classifies input events.
type EventKind int

const (
	EventKey EventKind = iota
	EventButton
	EventQuit
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventButton:
		return "button"
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one unit of input.
type Event struct {
	Kind EventKind
	Key  ui.Key
	// Button is the zero-based index within a row; Top selects the row.
	Button int
	Top    bool
	Width  int
	Height int
}

func KeyEvent(k ui.Key) Event { return Event{Kind: EventKey, Key: k} }

func ButtonEvent(index int, top bool) Event {
	return Event{Kind: EventButton, Button: index, Top: top}
}

func QuitEvent() Event { return Event{Kind: EventQuit} }

func ResizeEvent(w, h int) Event { return Event{Kind: EventResize, Width: w, Height: h} }

// EventSource yields the input that arrived since the previous call. Poll
// must not block.
type EventSource interface {
	Poll() []Event
}

// Presenter publishes the frame drawn on the display surface.
type Presenter interface {
	Present()
}

// Resizer is implemented by surfaces whose size follows the host window.
type Resizer interface {
	Resize(w, h int)
}

// ButtonsPerRow is the number of physical buttons in each row.
const ButtonsPerRow = 5

// buttonForKey maps F1-F5 to the top row and F6-F10 to the bottom row.
func buttonForKey(k ui.Key) (index int, top bool, ok bool) {
	keys := [...]ui.Key{
		ui.KeyF1, ui.KeyF2, ui.KeyF3, ui.KeyF4, ui.KeyF5,
		ui.KeyF6, ui.KeyF7, ui.KeyF8, ui.KeyF9, ui.KeyF10,
	}
	for i, fk := range keys {
		if k == fk {
			return i % ButtonsPerRow, i < ButtonsPerRow, true
		}
	}
	return 0, false, false
}
