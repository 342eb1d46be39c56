package ui

// BarChart is a labelled horizontal bar showing a percentage.
type BarChart struct {
	Base
	// Value is clamped to [0, 100] when drawn.
	Value float64
	// Width is the bar length in surface units, excluding the label.
	Width int

	label *TextBlock
}

func NewBarChart(d *Display, label string, width int) *BarChart {
	return &BarChart{Base: NewBase(d), Width: width, label: NewTextBlock(d, label)}
}

// Fill returns how many units of the bar are filled.
func (b *BarChart) Fill() int {
	v := min(max(b.Value, 0), 100)
	return int(v * float64(b.Width) / 100)
}

func (b *BarChart) barHeight() int {
	return b.display.LineHeight()
}

func (b *BarChart) Arrange() Size {
	l := b.label.Arrange()
	w := l.W + b.display.PaddingX + b.Width
	return b.setDesired(Size{W: w, H: max(l.H, b.barHeight())})
}

func (b *BarChart) Render() Rect {
	if !b.Visible() {
		return b.empty()
	}
	cs := b.display.Scheme()
	b.label.SetPos(b.Pos())
	l := b.label.Render()
	bar := Rect{X: b.Pos().X + l.W + b.display.PaddingX, Y: b.Pos().Y, W: b.Width, H: b.barHeight()}
	b.display.Surface.DrawRect(bar, cs.Foreground, false)
	if f := b.Fill(); f > 0 {
		b.display.Surface.DrawRect(Rect{X: bar.X, Y: bar.Y, W: f, H: bar.H}, cs.Highlight, true)
	}
	return b.finish(RectAt(b.Pos(), b.desired))
}
