package mfd

import "mfd/internal/ui"

// MessagePage shows a header and a single line of text. It stands in for
// features that have no implementation yet.
type MessagePage struct {
	*BasePage
	Message *ui.TextBlock
}

func NewMessagePage(c *Controller, app Application, label, message string) *MessagePage {
	p := &MessagePage{BasePage: NewBasePage(c, app, label)}
	p.Message = ui.NewTextBlock(c.Display, message)
	p.Panel.Add(p.HeaderLabel(label), p.Message)
	return p
}

// ExitState is the confirmation stage of an ExitPage.
type ExitState int

const (
	ExitIdle ExitState = iota
	ExitArmed
	ExitConfirmed
)

func (s ExitState) String() string {
	switch s {
	case ExitArmed:
		return "armed"
	case ExitConfirmed:
		return "confirmed"
	default:
		return "idle"
	}
}

// ExitPage quits the program after its button is pressed twice more while
// it is showing. Leaving the page disarms it.
type ExitPage struct {
	*BasePage
	state  ExitState
	prompt *ui.TextBlock
}

func NewExitPage(c *Controller, app Application) *ExitPage {
	p := &ExitPage{BasePage: NewBasePage(c, app, "EXIT")}
	p.prompt = ui.NewTextBlock(c.Display, "")
	p.Panel.Add(p.HeaderLabel("Exit"), p.prompt)
	return p
}

func (p *ExitPage) State() ExitState { return p.state }

func (p *ExitPage) HandleSelected() {
	p.state = ExitIdle
	p.BasePage.HandleSelected()
}

func (p *ExitPage) HandleUnselected() {
	p.state = ExitIdle
	p.BasePage.HandleUnselected()
}

func (p *ExitPage) HandleReselected() {
	switch p.state {
	case ExitIdle:
		p.state = ExitArmed
	case ExitArmed:
		p.state = ExitConfirmed
		p.Controller.RequestExit()
	}
}

func (p *ExitPage) Arrange() ui.Size {
	switch p.state {
	case ExitArmed:
		p.prompt.SetText("Press EXIT again to confirm")
		p.prompt.Highlighted = true
	case ExitConfirmed:
		p.prompt.SetText("Shutting down")
		p.prompt.Highlighted = true
	default:
		p.prompt.SetText("Press EXIT to quit")
		p.prompt.Highlighted = false
	}
	return p.BasePage.Arrange()
}
