// Package term runs the display in a terminal. Canvas implements the
// drawing surface on a grid of styled cells; the bubbletea model turns
// key presses and window resizes into display events and shows the last
// presented frame.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"mfd/internal/theme"
	"mfd/internal/ui"
	"mfd/internal/ui/textutil"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type cell struct {
	r    rune // 0 marks the right half of a wide rune
	fg   theme.Color
	bg   theme.Color
	bold bool
}

// Canvas is a width x height grid of cells. One text line is one row.
// It is not safe for concurrent use; the frame loop owns it and publishes
// finished frames through Render.
type Canvas struct {
	w, h  int
	cells []cell
	bg    theme.Color
	clip  ui.Rect
}

// NewCanvas returns a canvas of the given size, clamped to at least 1x1.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(w, 1), max(h, 1)
	c.cells = make([]cell, c.w*c.h)
	c.Fill(c.bg)
}

func (c *Canvas) Bounds() ui.Rect {
	return ui.Rect{W: c.w, H: c.h}
}

// SetClip restricts drawing to r; the zero Rect lifts the restriction.
func (c *Canvas) SetClip(r ui.Rect) ui.Rect {
	prev := c.clip
	c.clip = r
	return prev
}

// at returns the drawable cell at x, y, or nil when it is off the grid or
// outside the clip.
func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	if c.clip != (ui.Rect{}) && !c.clip.Contains(ui.Point{X: x, Y: y}) {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *Canvas) Fill(col theme.Color) {
	c.bg = col
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: col, bg: col}
	}
}

func (c *Canvas) MeasureText(f *ui.Font, text string) ui.Size {
	if f == nil || text == "" {
		return ui.Size{}
	}
	return ui.Size{W: textutil.Width(text), H: 1}
}

// DrawText writes text on row at.Y, clipped at the right edge.
func (c *Canvas) DrawText(f *ui.Font, text string, at ui.Point, col theme.Color) ui.Rect {
	if f == nil || text == "" {
		return ui.Rect{X: at.X, Y: at.Y}
	}
	if at.X < c.w {
		text = textutil.Clip(text, c.w-at.X)
	}
	x := at.X
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if p := c.at(x, at.Y); p != nil {
			*p = cell{r: r, fg: col, bg: p.bg, bold: f.Bold}
		}
		if rw == 2 {
			if p := c.at(x+1, at.Y); p != nil {
				*p = cell{r: 0, fg: col, bg: p.bg}
			}
		}
		x += rw
	}
	return ui.Rect{X: at.X, Y: at.Y, W: x - at.X, H: 1}
}

func (c *Canvas) set(x, y int, r rune, col theme.Color) {
	if p := c.at(x, y); p != nil {
		p.r, p.fg, p.bold = r, col, false
	}
}

// DrawRect fills r with blocks, or outlines it. Single-row outlines are
// drawn as brackets so they can sit inline with text.
func (c *Canvas) DrawRect(r ui.Rect, col theme.Color, filled bool) {
	if r.Empty() {
		return
	}
	if filled {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				c.set(x, y, '█', col)
			}
		}
		return
	}
	if r.H == 1 {
		c.set(r.X, r.Y, '[', col)
		if r.W > 1 {
			c.set(r.Right()-1, r.Y, ']', col)
		}
		return
	}
	for x := r.X + 1; x < r.Right()-1; x++ {
		c.set(x, r.Y, '─', col)
		c.set(x, r.Bottom()-1, '─', col)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.set(r.X, y, '│', col)
		c.set(r.Right()-1, y, '│', col)
	}
	c.set(r.X, r.Y, '┌', col)
	c.set(r.Right()-1, r.Y, '┐', col)
	c.set(r.X, r.Bottom()-1, '└', col)
	c.set(r.Right()-1, r.Bottom()-1, '┘', col)
}

// DrawHLine draws a rule. Translucent colors tint the row instead.
func (c *Canvas) DrawHLine(x1, x2, y int, col theme.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		p := c.at(x, y)
		if p == nil {
			continue
		}
		if col.A < 255 {
			p.fg = col.Blend(p.fg)
			p.bg = col.Blend(p.bg)
			continue
		}
		if p.r == ' ' {
			p.r = '─'
		}
		p.fg = col
	}
}

// DrawCircle plots a circle with cells twice as tall as they are wide.
func (c *Canvas) DrawCircle(center ui.Point, radius int, col theme.Color, filled bool) {
	if radius <= 0 {
		c.set(center.X, center.Y, '●', col)
		return
	}
	rx, ry := float64(2*radius), float64(radius)
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - 2*radius; x <= center.X+2*radius; x++ {
			dx := float64(x-center.X) / rx
			dy := float64(y-center.Y) / ry
			d := math.Sqrt(dx*dx + dy*dy)
			switch {
			case filled && d <= 1:
				c.set(x, y, '█', col)
			case !filled && math.Abs(d-1) <= 0.5/ry:
				c.set(x, y, '·', col)
			}
		}
	}
}

// PlainText returns the grid as unstyled rows.
func (c *Canvas) PlainText() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.w; x++ {
			if r := c.cells[y*c.w+x].r; r != 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// Render returns the grid with colors, one lipgloss style per run of
// identically styled cells.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for start < len(row) {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			sb.WriteString(styleOf(row[start]).Render(runText(row[start:end])))
			start = end
		}
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func runText(cells []cell) string {
	var sb strings.Builder
	for _, cl := range cells {
		if cl.r != 0 {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

func styleOf(cl cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cl.fg.Hex())).
		Background(lipgloss.Color(cl.bg.Hex())).
		Bold(cl.bold)
}
