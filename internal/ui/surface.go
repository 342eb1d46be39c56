package ui

import "mfd/internal/theme"

// Font names a text style. Surfaces decide what a font looks like; the toolkit
// only passes it through and treats a nil font as "no content".
type Font struct {
	Name string
	Size int
	Bold bool
}

// Surface is the drawing target widgets paint on. Implementations own
// rasterization; the toolkit never draws glyphs or shapes itself.
type Surface interface {
	// Bounds is the drawable area.
	Bounds() Rect
	// Fill clears the whole surface to c.
	Fill(c theme.Color)
	// DrawText draws a single line of text and returns the rectangle it covers.
	DrawText(f *Font, text string, at Point, c theme.Color) Rect
	// MeasureText returns the size DrawText would cover without drawing.
	MeasureText(f *Font, text string) Size
	// DrawRect outlines r, or fills it when filled is true.
	DrawRect(r Rect, c theme.Color, filled bool)
	// DrawHLine draws a horizontal line from x1 to x2 inclusive. Colors with
	// alpha below 255 tint what is already on the surface.
	DrawHLine(x1, x2, y int, c theme.Color)
	// DrawCircle outlines, or fills, a circle.
	DrawCircle(center Point, radius int, c theme.Color, filled bool)
	// SetClip limits every draw call except Fill to r and returns the
	// previous clip. The zero Rect removes the limit.
	SetClip(r Rect) Rect
}
