package mfd

import (
	"slices"
	"time"

	"mfd/internal/provider"
	"mfd/internal/ui"
)

// Page is one screen of an application, bound to a bottom-row button.
type Page interface {
	// ButtonText labels the page's button. It must not change state.
	ButtonText() string
	// HandleSelected runs once each time the page becomes active.
	HandleSelected()
	// HandleUnselected runs once each time the page stops being active.
	HandleUnselected()
	// HandleReselected runs when the active page's button is pressed again.
	HandleReselected()
	Arrange() ui.Size
	Render() ui.Rect
	// HandleKey receives keys the focused widget did not consume.
	HandleKey(k ui.Key) bool
}

// FocusOwner is implemented by pages that track a focused widget. Keys are
// offered to that widget before the page.
type FocusOwner interface {
	FocusedWidget() ui.Focusable
}

// BasePage carries what every page shares: the root panel, the focus
// cursor, the refresh gate and an optional status message. Concrete pages
// embed it and override the hooks they care about.
type BasePage struct {
	Controller *Controller
	App        Application
	Display    *ui.Display
	Panel      *ui.StackPanel
	Label      string
	// Status, when set, replaces the page content with a centered line.
	Status string

	// RefreshInterval gates calls to Provider.Update from Arrange.
	RefreshInterval time.Duration
	Provider        provider.Provider
	lastRefresh     time.Time

	focused  ui.Focusable
	focusIdx int

	status *ui.TextBlock
}

// NewBasePage creates a page with an empty vertical root panel.
func NewBasePage(c *Controller, app Application, label string) *BasePage {
	d := c.Display
	return &BasePage{
		Controller: c,
		App:        app,
		Display:    d,
		Panel:      ui.NewStackPanel(d, ui.Vertical),
		Label:      label,
		status:     ui.NewTextBlock(d, ""),
	}
}

func (p *BasePage) ButtonText() string { return p.Label }

// HandleSelected refreshes the provider and focuses the first enabled
// control when nothing is focused.
func (p *BasePage) HandleSelected() {
	p.Refresh(p.Controller.Now())
	if p.focused == nil {
		p.AdvanceFocus(1)
	}
}

func (p *BasePage) HandleUnselected() {}

func (p *BasePage) HandleReselected() {}

// HeaderLabel builds a highlighted page title.
func (p *BasePage) HeaderLabel(text string) *ui.TextBlock {
	return ui.NewHeader(p.Display, text)
}

// LastRefresh is when the provider was last updated, zero if never.
func (p *BasePage) LastRefresh() time.Time { return p.lastRefresh }

// Refresh updates the provider unconditionally.
func (p *BasePage) Refresh(now time.Time) {
	if p.Provider == nil {
		return
	}
	p.Provider.Update(now)
	p.lastRefresh = now
}

// RefreshIfDue updates the provider when it was never refreshed or the
// interval has elapsed. It reports whether it did.
func (p *BasePage) RefreshIfDue(now time.Time) bool {
	if p.Provider == nil {
		return false
	}
	if !p.lastRefresh.IsZero() && now.Sub(p.lastRefresh) < p.RefreshInterval {
		return false
	}
	p.Refresh(now)
	return true
}

// Arrange runs the refresh gate, repairs focus, then arranges the content.
func (p *BasePage) Arrange() ui.Size {
	p.RefreshIfDue(p.Controller.Now())
	p.reconcileFocus()
	if p.Status != "" {
		p.status.Font = p.Display.Fonts.Normal
		p.status.SetText(p.Status)
		return p.status.Arrange()
	}
	return p.Panel.Arrange()
}

// Render draws the content at the top left of the content area, or the
// status message centered in it. Nothing is drawn outside the area.
func (p *BasePage) Render() ui.Rect {
	area := p.Display.ContentRect()
	prev := p.Display.Surface.SetClip(area)
	defer p.Display.Surface.SetClip(prev)
	if p.Status != "" {
		s := p.status.DesiredSize()
		p.status.SetPos(ui.Point{X: area.X + (area.W-s.W)/2, Y: area.Y + (area.H-s.H)/2})
		return p.status.Render()
	}
	p.Panel.SetPos(area.Pos())
	return p.Panel.Render()
}

// HandleKey moves focus with the arrow, tab and shift+tab keys.
func (p *BasePage) HandleKey(k ui.Key) bool {
	switch k {
	case ui.KeyUp, ui.KeyBackTab:
		return p.AdvanceFocus(-1)
	case ui.KeyDown, ui.KeyTab:
		return p.AdvanceFocus(1)
	}
	return false
}

// HandleControlStateChanged is the default listener; pages that react to
// their controls override it.
func (p *BasePage) HandleControlStateChanged(ui.Widget) {}

// FocusedWidget returns the focused control or nil.
func (p *BasePage) FocusedWidget() ui.Focusable { return p.focused }

func (p *BasePage) focusables() []ui.Focusable {
	return ui.Focusables(p.Panel)
}

// SetFocus moves focus to w. It refuses disabled widgets and widgets that
// are not on this page. Passing nil clears focus.
func (p *BasePage) SetFocus(w ui.Focusable) bool {
	if w == nil {
		p.blur()
		return true
	}
	if !w.Enabled() {
		return false
	}
	all := p.focusables()
	idx := slices.IndexFunc(all, func(f ui.Focusable) bool { return f == w })
	if idx < 0 {
		return false
	}
	p.moveTo(w, idx)
	return true
}

// AdvanceFocus moves to the next (dir > 0) or previous enabled control in
// depth-first order, wrapping at the ends. With nothing focused it picks
// the first or last. It reports whether any control could take focus.
func (p *BasePage) AdvanceFocus(dir int) bool {
	all := p.focusables()
	n := len(all)
	if n == 0 {
		p.blur()
		return false
	}
	start := slices.IndexFunc(all, func(f ui.Focusable) bool { return f == p.focused })
	step := 1
	if dir < 0 {
		step = -1
	}
	if start < 0 {
		if step > 0 {
			start = -1
		} else {
			start = n
		}
	}
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if all[idx].Enabled() {
			p.moveTo(all[idx], idx)
			return true
		}
	}
	p.blur()
	return false
}

// reconcileFocus moves focus off a control that was disabled, hidden or
// removed since the last frame, to the next enabled control after its old
// position.
func (p *BasePage) reconcileFocus() {
	if p.focused == nil {
		return
	}
	all := p.focusables()
	idx := slices.IndexFunc(all, func(f ui.Focusable) bool { return f == p.focused })
	if idx >= 0 && p.focused.Enabled() {
		p.focusIdx = idx
		return
	}
	from := p.focusIdx
	if idx >= 0 {
		from = idx + 1
	}
	p.blur()
	n := len(all)
	for i := 0; i < n; i++ {
		j := (from + i) % n
		if all[j].Enabled() {
			p.moveTo(all[j], j)
			return
		}
	}
}

func (p *BasePage) moveTo(w ui.Focusable, idx int) {
	if p.focused == w {
		p.focusIdx = idx
		return
	}
	p.blur()
	p.focused = w
	p.focusIdx = idx
	w.Focus()
}

func (p *BasePage) blur() {
	if p.focused != nil {
		p.focused.Blur()
		p.focused = nil
	}
}

// dispatchKey offers k to the page's focused widget, then the page.
func dispatchKey(p Page, k ui.Key) bool {
	if fo, ok := p.(FocusOwner); ok {
		if f := fo.FocusedWidget(); f != nil && f.Enabled() && f.HandleKey(k) {
			return true
		}
	}
	return p.HandleKey(k)
}
