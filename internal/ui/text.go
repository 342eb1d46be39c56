package ui

import (
	"fmt"

	"mfd/internal/theme"
)

// TextBlock renders one line of text. Text is used as a fmt format string
// when Args is non-empty.
//
// The color is looked up from the display's scheme at render time: Highlight
// when Highlighted, Foreground otherwise, unless Color overrides both.
type TextBlock struct {
	Base
	Font        *Font
	Text        string
	Args        []any
	Highlighted bool
	Color       *theme.Color
}

// NewTextBlock creates a text block in the normal font.
func NewTextBlock(d *Display, text string) *TextBlock {
	return &TextBlock{Base: NewBase(d), Font: d.Fonts.Normal, Text: text}
}

// NewHeader creates a highlighted text block in the header font.
func NewHeader(d *Display, text string) *TextBlock {
	return &TextBlock{Base: NewBase(d), Font: d.Fonts.Header, Text: text, Highlighted: true}
}

// Content returns the text after formatting.
func (t *TextBlock) Content() string {
	if len(t.Args) == 0 {
		return t.Text
	}
	return fmt.Sprintf(t.Text, t.Args...)
}

// SetText replaces the text and clears any format arguments.
func (t *TextBlock) SetText(s string) {
	t.Text = s
	t.Args = nil
}

// Foreground is the color the block renders with under the current scheme.
func (t *TextBlock) Foreground() theme.Color {
	if t.Color != nil {
		return *t.Color
	}
	return t.display.Scheme().FocusColor(t.Highlighted)
}

func (t *TextBlock) Arrange() Size {
	s := t.Content()
	if t.Font == nil || s == "" {
		return t.setDesired(Size{})
	}
	return t.setDesired(t.display.Surface.MeasureText(t.Font, s))
}

func (t *TextBlock) Render() Rect {
	s := t.Content()
	if !t.Visible() || t.Font == nil || s == "" {
		return t.empty()
	}
	return t.finish(t.display.Surface.DrawText(t.Font, s, t.Pos(), t.Foreground()))
}

// SpacerLine is an empty line the height of normal text.
type SpacerLine struct {
	Base
}

func NewSpacerLine(d *Display) *SpacerLine {
	return &SpacerLine{Base: NewBase(d)}
}

func (s *SpacerLine) Arrange() Size {
	return s.setDesired(Size{H: s.display.LineHeight()})
}

func (s *SpacerLine) Render() Rect {
	return s.finish(RectAt(s.Pos(), s.desired))
}
