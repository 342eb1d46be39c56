package ui

// Focusable is a widget that can hold keyboard focus. At most one focusable
// per page is focused at a time; the page enforces that, widgets only track
// their own flag.
type Focusable interface {
	Widget
	Focused() bool
	Enabled() bool
	SetEnabled(on bool)
	Focus()
	Blur()
	// HandleKey returns true when the key was consumed.
	HandleKey(k Key) bool
}

// StateListener is notified when a control's user-visible state changes,
// e.g. a check box toggles or a menu item is activated.
type StateListener interface {
	HandleControlStateChanged(w Widget)
}

// StateListenerFunc adapts a function to StateListener.
type StateListenerFunc func(w Widget)

func (f StateListenerFunc) HandleControlStateChanged(w Widget) { f(w) }

// FocusableBase carries the focus and enabled flags plus the listener.
type FocusableBase struct {
	Base
	focused  bool
	disabled bool
	listener StateListener
}

// NewFocusableBase returns an enabled, unfocused base reporting to l.
func NewFocusableBase(d *Display, l StateListener) FocusableBase {
	return FocusableBase{Base: NewBase(d), listener: l}
}

func (f *FocusableBase) Focused() bool { return f.focused }
func (f *FocusableBase) Enabled() bool { return !f.disabled }
func (f *FocusableBase) Focus()        { f.focused = true }
func (f *FocusableBase) Blur()         { f.focused = false }

// SetEnabled toggles whether the widget accepts focus. Disabling a focused
// widget blurs it.
func (f *FocusableBase) SetEnabled(on bool) {
	f.disabled = !on
	if f.disabled {
		f.focused = false
	}
}

// SetListener replaces the state listener.
func (f *FocusableBase) SetListener(l StateListener) {
	f.listener = l
}

// notify reports a state change of w, the outer widget embedding this base.
func (f *FocusableBase) notify(w Widget) {
	if f.listener != nil {
		f.listener.HandleControlStateChanged(w)
	}
}

// Focusables collects, depth first, every visible focusable under w
// (including w itself) in traversal order.
func Focusables(w Widget) []Focusable {
	var out []Focusable
	var walk func(Widget)
	walk = func(w Widget) {
		if w == nil || !w.Visible() {
			return
		}
		if f, ok := w.(Focusable); ok {
			out = append(out, f)
		}
		if c, ok := w.(Container); ok {
			for _, child := range c.Children() {
				walk(child)
			}
		}
	}
	walk(w)
	return out
}
