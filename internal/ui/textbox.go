package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TextBox is a single line entry field with an optional label. Empty
// positions up to MaxLength are shown as underscores.
type TextBox struct {
	FocusableBase
	Text string
	// Numeric restricts input to digits.
	Numeric bool
	// MaxLength caps the number of characters; zero means unlimited.
	MaxLength int

	label *TextBlock
	value *TextBlock
	panel *StackPanel
}

func NewTextBox(d *Display, l StateListener, label string) *TextBox {
	tb := &TextBox{
		FocusableBase: NewFocusableBase(d, l),
		label:         NewTextBlock(d, label),
		value:         NewTextBlock(d, ""),
	}
	tb.panel = NewStackPanel(d, Horizontal)
	tb.panel.Add(tb.label, tb.value)
	return tb
}

func (t *TextBox) Focus() {
	t.FocusableBase.Focus()
	t.label.Highlighted = true
	t.value.Highlighted = true
}

func (t *TextBox) Blur() {
	t.FocusableBase.Blur()
	t.label.Highlighted = false
	t.value.Highlighted = false
}

// DisplayText is the value as drawn, padded to MaxLength.
func (t *TextBox) DisplayText() string {
	n := utf8.RuneCountInString(t.Text)
	if t.MaxLength > n {
		return t.Text + strings.Repeat("_", t.MaxLength-n)
	}
	if t.Text == "" {
		return "_"
	}
	return t.Text
}

func (t *TextBox) Arrange() Size {
	t.value.SetText(t.DisplayText())
	return t.setDesired(t.panel.Arrange())
}

func (t *TextBox) Render() Rect {
	if !t.Visible() {
		return t.empty()
	}
	t.panel.SetPos(t.Pos())
	return t.finish(t.panel.Render())
}

func (t *TextBox) HandleKey(k Key) bool {
	switch k {
	case KeyBackspace, KeyDelete:
		if t.Text == "" {
			return true
		}
		_, size := utf8.DecodeLastRuneInString(t.Text)
		t.Text = t.Text[:len(t.Text)-size]
		t.notify(t)
		return true
	}
	r, ok := k.Rune()
	if !ok || !t.accepts(r) {
		return false
	}
	if t.MaxLength > 0 && utf8.RuneCountInString(t.Text) >= t.MaxLength {
		return true
	}
	t.Text += string(r)
	t.notify(t)
	return true
}

func (t *TextBox) accepts(r rune) bool {
	if t.Numeric {
		return unicode.IsDigit(r)
	}
	return unicode.IsPrint(r)
}
