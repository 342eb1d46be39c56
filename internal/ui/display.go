package ui

import "mfd/internal/theme"

// Fonts are the text styles pages choose from.
type Fonts struct {
	Header *Font
	Normal *Font
	List   *Font
	Small  *Font
}

// DefaultFonts returns a fresh font set.
func DefaultFonts() Fonts {
	return Fonts{
		Header: &Font{Name: "header", Size: 18, Bold: true},
		Normal: &Font{Name: "normal", Size: 18},
		List:   &Font{Name: "list", Size: 14},
		Small:  &Font{Name: "small", Size: 10},
	}
}

// Display bundles the surface with the presentation settings every widget
// needs. It is created once and shared by reference.
type Display struct {
	Surface  Surface
	Fonts    Fonts
	PaddingX int
	PaddingY int

	scheme theme.Scheme
}

// NewDisplay creates a display drawing on s with the given scheme.
func NewDisplay(s Surface, scheme theme.Scheme) *Display {
	return &Display{
		Surface:  s,
		Fonts:    DefaultFonts(),
		PaddingX: 1,
		PaddingY: 0,
		scheme:   scheme,
	}
}

// Scheme returns the active color scheme.
func (d *Display) Scheme() theme.Scheme {
	return d.scheme
}

// SetScheme swaps the color scheme. The next render picks it up.
func (d *Display) SetScheme(s theme.Scheme) {
	d.scheme = s
}

// LineHeight is the height of one line of normal text.
func (d *Display) LineHeight() int {
	h := d.Surface.MeasureText(d.Fonts.Normal, "M").H
	if h <= 0 {
		return 1
	}
	return h
}

// HeaderHeight is the height reserved for each button row: one line of
// labels and the rule marking the active button.
func (d *Display) HeaderHeight() int {
	return d.LineHeight() + 1 + d.PaddingY
}

// ContentRect is the area between the two button rows.
func (d *Display) ContentRect() Rect {
	b := d.Surface.Bounds()
	hh := d.HeaderHeight()
	r := Rect{
		X: b.X + d.PaddingX,
		Y: b.Y + hh,
		W: b.W - 2*d.PaddingX,
		H: b.H - 2*hh,
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
