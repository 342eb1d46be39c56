package mfd

import (
	"mfd/internal/ui"
	"mfd/internal/ui/textutil"
)

// TopButtons labels the application slots. Placeholders and empty slots
// are disabled.
func (c *Controller) TopButtons() []Button {
	out := make([]Button, 0, len(c.apps))
	for i, a := range c.apps {
		if a == nil {
			out = append(out, Button{Disabled: true})
			continue
		}
		out = append(out, Button{
			Label:    a.ButtonText(),
			Active:   i == c.active,
			Disabled: !selectable(a),
		})
	}
	return out
}

// BottomButtons labels the active application's pages.
func (c *Controller) BottomButtons() []Button {
	if a := c.ActiveApp(); a != nil {
		return a.Buttons()
	}
	return nil
}

// renderButtons draws one header row, each label fitted to and centered
// in its slot.
func (c *Controller) renderButtons(buttons []Button, top bool) {
	d := c.Display
	b := d.Surface.Bounds()
	font := d.Fonts.Normal
	slot := b.W / ButtonsPerRow
	if slot <= 0 {
		return
	}
	y := b.Y
	if !top {
		y = b.Bottom() - d.LineHeight()
	}
	cs := d.Scheme()
	for i, btn := range buttons {
		if i >= ButtonsPerRow {
			break
		}
		if btn.Label == "" {
			continue
		}
		color := cs.Foreground
		switch {
		case btn.Disabled:
			color = cs.Disabled()
		case btn.Active:
			color = cs.Highlight
		}
		label := textutil.Truncate(btn.Label, slot)
		size := d.Surface.MeasureText(font, label)
		x := b.X + i*slot + (slot-size.W)/2
		r := d.Surface.DrawText(font, label, ui.Point{X: x, Y: y}, color)
		if btn.Active {
			d.Surface.DrawHLine(r.X, r.Right()-1, edgeRow(r, top), color)
		}
	}
}

// edgeRow is the row between a header label and the page content.
func edgeRow(r ui.Rect, top bool) int {
	if top {
		return r.Bottom()
	}
	return r.Y - 1
}
