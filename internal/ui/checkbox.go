package ui

// CheckBoxGlyph draws the box part of a check box: an outline, filled
// inside when checked.
type CheckBoxGlyph struct {
	Base
	Checked bool
	Focused bool
}

func NewCheckBoxGlyph(d *Display) *CheckBoxGlyph {
	return &CheckBoxGlyph{Base: NewBase(d)}
}

func (g *CheckBoxGlyph) Arrange() Size {
	m := g.display.Surface.MeasureText(g.display.Fonts.Normal, "M")
	side := max(m.H, 1)
	return g.setDesired(Size{W: max(3*m.W, side), H: side})
}

func (g *CheckBoxGlyph) Render() Rect {
	if !g.Visible() {
		return g.empty()
	}
	c := g.display.Scheme().FocusColor(g.Focused)
	r := RectAt(g.Pos(), g.desired)
	g.display.Surface.DrawRect(r, c, false)
	if g.Checked {
		inset := g.desired.W / 3
		dy := 0
		if r.H >= 3 {
			dy = r.H / 4
		}
		g.display.Surface.DrawRect(r.Inset(inset, dy), c, true)
	}
	return g.finish(r)
}

// CheckBox is a label followed by a glyph. Enter or space toggles it.
type CheckBox struct {
	FocusableBase
	Checked bool

	label *TextBlock
	glyph *CheckBoxGlyph
	panel *StackPanel
}

// NewCheckBox creates an unchecked box labelled text.
func NewCheckBox(d *Display, l StateListener, text string) *CheckBox {
	cb := &CheckBox{
		FocusableBase: NewFocusableBase(d, l),
		label:         NewTextBlock(d, text),
		glyph:         NewCheckBoxGlyph(d),
	}
	cb.panel = NewStackPanel(d, Horizontal)
	cb.panel.CenterAlign = true
	cb.panel.Add(cb.label, cb.glyph)
	return cb
}

// Label returns the label text.
func (c *CheckBox) Label() string { return c.label.Text }

func (c *CheckBox) Focus() {
	c.FocusableBase.Focus()
	c.label.Highlighted = true
	c.glyph.Focused = true
}

func (c *CheckBox) Blur() {
	c.FocusableBase.Blur()
	c.label.Highlighted = false
	c.glyph.Focused = false
}

func (c *CheckBox) Arrange() Size {
	c.glyph.Checked = c.Checked
	return c.setDesired(c.panel.Arrange())
}

func (c *CheckBox) Render() Rect {
	if !c.Visible() {
		return c.empty()
	}
	c.panel.SetPos(c.Pos())
	return c.finish(c.panel.Render())
}

func (c *CheckBox) HandleKey(k Key) bool {
	if !k.IsActivate() {
		return false
	}
	c.Checked = !c.Checked
	c.glyph.Checked = c.Checked
	c.notify(c)
	return true
}
