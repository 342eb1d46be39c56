package ui

// Widget is the position/size contract shared by everything on a page.
// Arrange must run before Render in every frame.
type Widget interface {
	// Arrange computes and caches the desired size. Containers arrange their
	// children first.
	Arrange() Size
	// Render paints at the assigned position and returns the occupied rect.
	Render() Rect
	Pos() Point
	SetPos(p Point)
	DesiredSize() Size
	Visible() bool
}

// Container is implemented by widgets that own child widgets. Focus traversal
// descends through containers in child order.
type Container interface {
	Widget
	Children() []Widget
}

// Base implements the bookkeeping half of Widget. Concrete widgets embed it
// and supply Arrange and Render.
type Base struct {
	display *Display
	pos     Point
	desired Size
	rect    Rect
	hidden  bool
}

// NewBase returns a Base bound to d.
func NewBase(d *Display) Base {
	return Base{display: d}
}

func (b *Base) Display() *Display    { return b.display }
func (b *Base) Pos() Point           { return b.pos }
func (b *Base) SetPos(p Point)       { b.pos = p }
func (b *Base) DesiredSize() Size    { return b.desired }
func (b *Base) Visible() bool        { return !b.hidden }
func (b *Base) SetVisible(show bool) { b.hidden = !show }

// Bounds is the rectangle covered by the last render.
func (b *Base) Bounds() Rect { return b.rect }

// setDesired caches and returns s.
func (b *Base) setDesired(s Size) Size {
	b.desired = s
	return s
}

// finish records r as the rendered rectangle.
func (b *Base) finish(r Rect) Rect {
	b.rect = r
	return r
}

// empty records a zero-size render at the current position.
func (b *Base) empty() Rect {
	return b.finish(Rect{X: b.pos.X, Y: b.pos.Y})
}
