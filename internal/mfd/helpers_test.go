package mfd

import (
	"io"
	"log/slog"
	"time"

	"mfd/internal/ui"
	"mfd/internal/ui/uitest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestController(opts ...Option) (*Controller, *uitest.Recorder, *fakeClock) {
	d, rec := uitest.NewDisplay(80, 24)
	clock := &fakeClock{t: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithLogger(quietLogger()), WithClock(clock.Now)}, opts...)
	return NewController(d, opts...), rec, clock
}

// countingPage records lifecycle calls.
type countingPage struct {
	*BasePage
	selected, unselected, reselected int
	log                              *[]string
}

func newCountingPage(c *Controller, app Application, label string, log *[]string) *countingPage {
	return &countingPage{BasePage: NewBasePage(c, app, label), log: log}
}

func (p *countingPage) note(s string) {
	if p.log != nil {
		*p.log = append(*p.log, p.Label+"."+s)
	}
}

func (p *countingPage) HandleSelected() {
	p.selected++
	p.note("selected")
	p.BasePage.HandleSelected()
}

func (p *countingPage) HandleUnselected() {
	p.unselected++
	p.note("unselected")
}

func (p *countingPage) HandleReselected() {
	p.reselected++
	p.note("reselected")
}

// countingApp records lifecycle calls on top of BaseApplication.
type countingApp struct {
	*BaseApplication
	selected, unselected, reselected int
	log                              *[]string
}

func newCountingApp(c *Controller, label string, log *[]string, pageLabels ...string) *countingApp {
	a := &countingApp{BaseApplication: NewBaseApplication(c, label), log: log}
	var pages []Page
	for _, l := range pageLabels {
		pages = append(pages, newCountingPage(c, a, l, log))
	}
	a.SetPages(pages...)
	return a
}

func (a *countingApp) note(s string) {
	if a.log != nil {
		*a.log = append(*a.log, a.Label+"."+s)
	}
}

func (a *countingApp) HandleSelected() {
	a.selected++
	a.note("selected")
	a.BaseApplication.HandleSelected()
}

func (a *countingApp) HandleUnselected() {
	a.unselected++
	a.note("unselected")
	a.BaseApplication.HandleUnselected()
}

func (a *countingApp) HandleReselected() {
	a.reselected++
	a.note("reselected")
	a.BaseApplication.HandleReselected()
}

func (a *countingApp) page(i int) *countingPage {
	return a.Pages()[i].(*countingPage)
}

// scriptedSource returns one batch of events per Poll.
type scriptedSource struct {
	batches [][]Event
	polls   int
}

func (s *scriptedSource) Poll() []Event {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

type countingPresenter struct{ n int }

func (p *countingPresenter) Present() { p.n++ }

// focusPage is a page with controls for focus tests.
type focusPage struct {
	*BasePage
	boxes []*ui.CheckBox
}

func newFocusPage(c *Controller, n int) *focusPage {
	p := &focusPage{BasePage: NewBasePage(c, nil, "FOCUS")}
	p.Panel.Add(p.HeaderLabel("Focus"))
	for i := 0; i < n; i++ {
		cb := ui.NewCheckBox(c.Display, p, string(rune('a'+i)))
		p.boxes = append(p.boxes, cb)
		p.Panel.Add(cb)
	}
	return p
}
