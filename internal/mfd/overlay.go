package mfd

import (
	"fmt"

	"mfd/internal/theme"
	"mfd/internal/ui"
)

// Overlay draws on top of the finished page each frame.
type Overlay interface {
	Render(c *Controller)
}

// OverlayStack renders overlays bottom to top.
type OverlayStack struct {
	Stack []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

func (s *OverlayStack) Render(c *Controller) {
	for _, o := range s.Stack {
		o.Render(c)
	}
}

// FPSOverlay prints the measured frame rate in the top left corner.
type FPSOverlay struct{}

func (FPSOverlay) Render(c *Controller) {
	if !c.options.ShowFPS {
		return
	}
	d := c.Display
	b := d.Surface.Bounds()
	at := ui.Point{X: b.X, Y: b.Y + d.HeaderHeight()}
	d.Surface.DrawText(d.Fonts.Small, fmt.Sprintf("%.2f", c.FPS()), at, d.Scheme().Highlight)
}

// InterlaceOverlay dims every other row.
type InterlaceOverlay struct {
	Alpha uint8
}

func (o InterlaceOverlay) Render(c *Controller) {
	if !c.options.Interlace {
		return
	}
	alpha := o.Alpha
	if alpha == 0 {
		alpha = 50
	}
	b := c.Display.Surface.Bounds()
	dim := theme.Color{A: alpha}
	for y := b.Y + 1; y < b.Bottom()-1; y += 2 {
		c.Display.Surface.DrawHLine(b.X, b.Right()-1, y, dim)
	}
}

// ScanlineOverlay sweeps a fading band of highlight color down the screen,
// then pauses off screen before starting again. Its speed is scaled by the
// frame rate so the sweep takes the same time at any FPS.
type ScanlineOverlay struct {
	// Speed is rows per frame at 60 FPS.
	Speed float64
	// Delay is how many rows' worth of travel the band spends off screen.
	Delay float64

	y float64
}

func (o *ScanlineOverlay) height(b ui.Rect) int {
	return max(1, b.H/12)
}

func (o *ScanlineOverlay) Render(c *Controller) {
	if !c.options.Scanline {
		return
	}
	speed := o.Speed
	if speed == 0 {
		speed = 0.25
	}
	delay := o.Delay
	if delay == 0 {
		delay = 60
	}
	d := c.Display
	b := d.Surface.Bounds()
	h := o.height(b)
	hl := d.Scheme().Highlight
	top := int(o.y)
	for i := 0; i < h; i++ {
		y := b.Y + top + i
		if y < b.Y || y >= b.Bottom() {
			continue
		}
		alpha := uint8(min(255, (i+1)*64/h))
		d.Surface.DrawHLine(b.X, b.Right()-1, y, hl.WithAlpha(alpha))
	}

	fps := c.options.FPS
	if fps <= 0 {
		fps = 60
	}
	step := speed * 60 / float64(fps)
	if o.y < float64(b.H+h)+delay*step {
		o.y += step
	} else {
		o.y = -float64(h)
	}
}
