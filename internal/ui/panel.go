package ui

// Orientation selects the stacking axis of a StackPanel.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// StackPanel lays its children out one after another along a single axis.
//
// Desired size along the axis is the sum of the visible children's sizes
// plus Spacing between neighbours; across the axis it is the largest child.
// Invisible children take no space and are not rendered.
type StackPanel struct {
	Base
	Orientation Orientation
	// CenterAlign centers children across the axis instead of aligning them
	// to the leading edge.
	CenterAlign bool
	// Spacing is the gap between neighbours. A negative value selects the
	// display padding for the axis.
	Spacing int

	children []Widget
}

// NewStackPanel creates an empty panel. Spacing defaults to the display's
// padding for the chosen axis.
func NewStackPanel(d *Display, o Orientation) *StackPanel {
	return &StackPanel{Base: NewBase(d), Orientation: o, Spacing: -1}
}

// Add appends children in order and returns the panel for chaining.
func (p *StackPanel) Add(ws ...Widget) *StackPanel {
	for _, w := range ws {
		if w != nil {
			p.children = append(p.children, w)
		}
	}
	return p
}

// Clear removes every child.
func (p *StackPanel) Clear() {
	p.children = nil
}

// Children returns the children in layout order.
func (p *StackPanel) Children() []Widget {
	return p.children
}

func (p *StackPanel) spacing() int {
	if p.Spacing >= 0 {
		return p.Spacing
	}
	if p.display == nil {
		return 0
	}
	if p.Orientation == Horizontal {
		return p.display.PaddingX
	}
	return p.display.PaddingY
}

func (p *StackPanel) Arrange() Size {
	var main, cross, n int
	for _, c := range p.children {
		if !c.Visible() {
			continue
		}
		s := c.Arrange()
		if n > 0 {
			main += p.spacing()
		}
		n++
		if p.Orientation == Horizontal {
			main += s.W
			cross = max(cross, s.H)
		} else {
			main += s.H
			cross = max(cross, s.W)
		}
	}
	if p.Orientation == Horizontal {
		return p.setDesired(Size{W: main, H: cross})
	}
	return p.setDesired(Size{W: cross, H: main})
}

func (p *StackPanel) Render() Rect {
	if !p.Visible() {
		return p.empty()
	}
	origin := p.Pos()
	cursor := 0
	gap := p.spacing()
	for _, c := range p.children {
		if !c.Visible() {
			continue
		}
		s := c.DesiredSize()
		var at Point
		if p.Orientation == Horizontal {
			at = Point{X: origin.X + cursor, Y: origin.Y}
			if p.CenterAlign {
				at.Y += (p.desired.H - s.H) / 2
			}
			cursor += s.W + gap
		} else {
			at = Point{X: origin.X, Y: origin.Y + cursor}
			if p.CenterAlign {
				at.X += (p.desired.W - s.W) / 2
			}
			cursor += s.H + gap
		}
		c.SetPos(at)
		c.Render()
	}
	return p.finish(RectAt(origin, p.desired))
}
