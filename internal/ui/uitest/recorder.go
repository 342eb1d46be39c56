// Package uitest provides a recording Surface for widget and page tests.
package uitest

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"mfd/internal/theme"
	"mfd/internal/ui"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   string // fill, text, rect, hline, circle
	Text   string
	Rect   ui.Rect
	Color  theme.Color
	Filled bool
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text %q at %d,%d", o.Text, o.Rect.X, o.Rect.Y)
	default:
		return fmt.Sprintf("%s %+v", o.Kind, o.Rect)
	}
}

// Recorder measures text as one unit per rune on a single line and keeps
// every drawing call for later inspection.
type Recorder struct {
	mu     sync.Mutex
	bounds ui.Rect
	clip   ui.Rect
	ops    []Op
}

// NewRecorder returns a recorder with the given drawable size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{bounds: ui.Rect{W: w, H: h}}
}

func (r *Recorder) Bounds() ui.Rect { return r.bounds }

func (r *Recorder) Fill(c theme.Color) {
	r.record(Op{Kind: "fill", Rect: r.bounds, Color: c})
}

func (r *Recorder) MeasureText(f *ui.Font, text string) ui.Size {
	if f == nil {
		return ui.Size{}
	}
	return ui.Size{W: utf8.RuneCountInString(text), H: 1}
}

func (r *Recorder) DrawText(f *ui.Font, text string, at ui.Point, c theme.Color) ui.Rect {
	rect := ui.RectAt(at, r.MeasureText(f, text))
	r.record(Op{Kind: "text", Text: text, Rect: rect, Color: c})
	return rect
}

func (r *Recorder) DrawRect(rect ui.Rect, c theme.Color, filled bool) {
	r.record(Op{Kind: "rect", Rect: rect, Color: c, Filled: filled})
}

func (r *Recorder) DrawHLine(x1, x2, y int, c theme.Color) {
	r.record(Op{Kind: "hline", Rect: ui.Rect{X: x1, Y: y, W: x2 - x1 + 1, H: 1}, Color: c})
}

func (r *Recorder) DrawCircle(center ui.Point, radius int, c theme.Color, filled bool) {
	rect := ui.Rect{X: center.X - radius, Y: center.Y - radius, W: 2*radius + 1, H: 2*radius + 1}
	r.record(Op{Kind: "circle", Rect: rect, Color: c, Filled: filled})
}

// SetClip makes the recorder drop draw calls that fall wholly outside rect.
func (r *Recorder) SetClip(rect ui.Rect) ui.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.clip
	r.clip = rect
	return prev
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if op.Kind != "fill" && r.clip != (ui.Rect{}) && op.Rect.Intersect(r.clip).Empty() {
		return
	}
	r.ops = append(r.ops, op)
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops() {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// TextAt returns the first text op drawn exactly as s.
func (r *Recorder) TextAt(s string) (Op, bool) {
	for _, op := range r.Ops() {
		if op.Kind == "text" && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops() {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}

// NewDisplay returns a display over a fresh recorder using the default scheme.
func NewDisplay(w, h int) (*ui.Display, *Recorder) {
	rec := NewRecorder(w, h)
	return ui.NewDisplay(rec, theme.Default), rec
}
