package ui

// TextMenuItem is a focusable line of text. Activating it notifies the
// listener; Data carries whatever the owner needs to act on it.
type TextMenuItem struct {
	FocusableBase
	Data any

	label *TextBlock
}

func NewTextMenuItem(d *Display, l StateListener, text string, data any) *TextMenuItem {
	m := &TextMenuItem{
		FocusableBase: NewFocusableBase(d, l),
		Data:          data,
		label:         NewTextBlock(d, text),
	}
	m.label.Font = d.Fonts.List
	return m
}

func (m *TextMenuItem) Text() string { return m.label.Text }

func (m *TextMenuItem) SetText(s string) { m.label.SetText(s) }

func (m *TextMenuItem) Focus() {
	m.FocusableBase.Focus()
	m.label.Highlighted = true
}

func (m *TextMenuItem) Blur() {
	m.FocusableBase.Blur()
	m.label.Highlighted = false
}

func (m *TextMenuItem) Arrange() Size {
	return m.setDesired(m.label.Arrange())
}

func (m *TextMenuItem) Render() Rect {
	if !m.Visible() {
		return m.empty()
	}
	m.label.SetPos(m.Pos())
	return m.finish(m.label.Render())
}

func (m *TextMenuItem) HandleKey(k Key) bool {
	if k != KeyEnter {
		return false
	}
	m.notify(m)
	return true
}
