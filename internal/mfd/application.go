package mfd

// Button is one label in a header row.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// Application is a group of pages bound to a top-row button.
type Application interface {
	ButtonText() string
	Pages() []Page
	ActivePage() Page
	// SelectPage activates the page at index. Out of range is a no-op.
	SelectPage(index int)
	// Buttons are the bottom-row labels, in page order.
	Buttons() []Button
	HandleSelected()
	HandleUnselected()
	HandleReselected()
}

// BaseApplication implements Application over an ordered page list.
// Concrete applications embed it and call SetPages from their constructor.
type BaseApplication struct {
	Controller *Controller
	Label      string
	// DefaultPage is the index activated when the application is first
	// selected, and again when it is reselected.
	DefaultPage int

	pages  []Page
	active Page
}

func NewBaseApplication(c *Controller, label string) *BaseApplication {
	return &BaseApplication{Controller: c, Label: label}
}

func (a *BaseApplication) ButtonText() string { return a.Label }

// SetPages replaces the page list. The slice is copied.
func (a *BaseApplication) SetPages(pages ...Page) {
	a.pages = append([]Page(nil), pages...)
}

func (a *BaseApplication) Pages() []Page { return a.pages }

func (a *BaseApplication) ActivePage() Page { return a.active }

func (a *BaseApplication) SelectPage(index int) {
	if index < 0 || index >= len(a.pages) {
		return
	}
	a.Show(a.pages[index])
}

// Show activates p, which need not have a button. Showing the active page
// again counts as a reselect.
func (a *BaseApplication) Show(p Page) {
	if p == nil {
		return
	}
	if p == a.active {
		p.HandleReselected()
		return
	}
	if a.active != nil {
		a.active.HandleUnselected()
	}
	a.active = p
	p.HandleSelected()
}

func (a *BaseApplication) Buttons() []Button {
	out := make([]Button, len(a.pages))
	for i, p := range a.pages {
		out[i] = Button{Label: p.ButtonText(), Active: p == a.active}
	}
	return out
}

// HandleSelected re-activates the current page, or the default page the
// first time.
func (a *BaseApplication) HandleSelected() {
	if a.active == nil {
		a.SelectPage(a.DefaultPage)
		return
	}
	a.active.HandleSelected()
}

func (a *BaseApplication) HandleUnselected() {
	if a.active != nil {
		a.active.HandleUnselected()
	}
}

// HandleReselected returns to the default page from any other page.
func (a *BaseApplication) HandleReselected() {
	if a.DefaultPage < 0 || a.DefaultPage >= len(a.pages) {
		return
	}
	if a.active != a.pages[a.DefaultPage] {
		a.SelectPage(a.DefaultPage)
	}
}

// Placeholder reserves a top-row slot for an application that does not
// exist yet. Its label is drawn dimmed and selecting it does nothing.
type Placeholder struct {
	Label string
}

func (p *Placeholder) ButtonText() string { return p.Label }
func (p *Placeholder) Pages() []Page      { return nil }
func (p *Placeholder) ActivePage() Page   { return nil }
func (p *Placeholder) SelectPage(int)     {}
func (p *Placeholder) Buttons() []Button  { return nil }
func (p *Placeholder) HandleSelected()    {}
func (p *Placeholder) HandleUnselected()  {}
func (p *Placeholder) HandleReselected()  {}

func selectable(a Application) bool {
	if a == nil {
		return false
	}
	_, placeholder := a.(*Placeholder)
	return !placeholder
}
