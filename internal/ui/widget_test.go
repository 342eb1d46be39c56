package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfd/internal/theme"
	"mfd/internal/ui"
	"mfd/internal/ui/uitest"
)

type changes struct {
	seen []ui.Widget
}

func (c *changes) HandleControlStateChanged(w ui.Widget) {
	c.seen = append(c.seen, w)
}

func TestTextBlock_FormatsArgs(t *testing.T) {
	d, rec := uitest.NewDisplay(80, 24)
	tb := ui.NewTextBlock(d, "CPU %d%%")
	tb.Args = []any{42}

	assert.Equal(t, ui.Size{W: 7, H: 1}, tb.Arrange())
	tb.Render()
	assert.Equal(t, []string{"CPU 42%"}, rec.Texts())
}

func TestTextBlock_NilFontOrEmptyTextIsZeroSize(t *testing.T) {
	d, rec := uitest.NewDisplay(80, 24)
	noFont := ui.NewTextBlock(d, "text")
	noFont.Font = nil
	empty := ui.NewTextBlock(d, "")
	empty.SetPos(ui.Point{X: 5, Y: 6})

	assert.Equal(t, ui.Size{}, noFont.Arrange())
	assert.Equal(t, ui.Size{}, empty.Arrange())
	assert.Equal(t, ui.Rect{X: 5, Y: 6}, empty.Render())
	assert.Empty(t, rec.Texts())
}

func TestTextBlock_ColorFollowsSchemeAtRenderTime(t *testing.T) {
	d, rec := uitest.NewDisplay(80, 24)
	tb := ui.NewTextBlock(d, "hi")
	tb.Arrange()
	tb.Render()
	d.SetScheme(theme.Amber)
	tb.Highlighted = true
	tb.Render()

	ops := rec.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, theme.Green.Foreground, ops[0].Color)
	assert.Equal(t, theme.Amber.Highlight, ops[1].Color)
}

func TestCheckBox_ToggleNotifiesListener(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	l := &changes{}
	cb := ui.NewCheckBox(d, l, "Scanline:")

	assert.True(t, cb.HandleKey(ui.KeyEnter))
	assert.True(t, cb.Checked)
	assert.True(t, cb.HandleKey(ui.KeySpace))
	assert.False(t, cb.Checked)
	assert.False(t, cb.HandleKey(ui.KeyLeft))

	require.Len(t, l.seen, 2)
	assert.Same(t, cb, l.seen[0])
}

func TestCheckBox_RendersFilledGlyphWhenChecked(t *testing.T) {
	d, rec := uitest.NewDisplay(80, 24)
	cb := ui.NewCheckBox(d, nil, "FPS:")
	cb.Checked = true
	cb.Focus()

	size := cb.Arrange()
	cb.Render()

	assert.Equal(t, ui.Size{W: 4 + 1 + 3, H: 1}, size)
	var filled int
	for _, op := range rec.Ops() {
		if op.Kind == "rect" && op.Filled {
			filled++
			assert.Equal(t, theme.Default.Highlight, op.Color)
		}
	}
	assert.Equal(t, 1, filled)
}

func TestFocusable_DisableBlurs(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	cb := ui.NewCheckBox(d, nil, "x")
	cb.Focus()
	cb.SetEnabled(false)

	assert.False(t, cb.Focused())
	assert.False(t, cb.Enabled())
}

func TestTextBox_NumericWithMaxLength(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	l := &changes{}
	tb := ui.NewTextBox(d, l, "Zip:")
	tb.Numeric = true
	tb.MaxLength = 5

	assert.Equal(t, "_____", tb.DisplayText())
	for _, k := range []ui.Key{"1", "2", "a", "3", "4", "5", "6"} {
		tb.HandleKey(k)
	}
	assert.Equal(t, "12345", tb.Text)
	assert.False(t, tb.HandleKey("a"))

	tb.HandleKey(ui.KeyBackspace)
	assert.Equal(t, "1234", tb.Text)
	assert.Equal(t, "1234_", tb.DisplayText())
	assert.Len(t, l.seen, 6)
}

func TestTextBox_LeavesNavigationKeysAlone(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	tb := ui.NewTextBox(d, nil, "Name:")
	for _, k := range []ui.Key{ui.KeyUp, ui.KeyDown, ui.KeyTab, ui.KeyBackTab, ui.KeyF1} {
		assert.False(t, tb.HandleKey(k), k)
	}
}

func TestSpinnerBox_CyclesAndWraps(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	l := &changes{}
	s := ui.NewSpinnerBox(d, l, "Scheme:", []string{"A", "B", "C"})

	s.HandleKey(ui.KeyLeft)
	assert.Equal(t, "C", s.Value())
	s.HandleKey(ui.KeyRight)
	s.HandleKey(ui.KeyEnter)
	assert.Equal(t, "B", s.Value())
	assert.True(t, s.SetValue("A"))
	assert.False(t, s.SetValue("Z"))
	assert.Equal(t, "A", s.Value())
	assert.Len(t, l.seen, 3)
}

func TestSpinnerBox_EmptyOptions(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	s := ui.NewSpinnerBox(d, nil, "x", nil)
	assert.Equal(t, "", s.Value())
	assert.False(t, s.HandleKey(ui.KeyRight))
}

func TestTextMenuItem_EnterNotifies(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	l := &changes{}
	m := ui.NewTextMenuItem(d, l, "item", 7)

	assert.False(t, m.HandleKey(ui.KeySpace))
	assert.True(t, m.HandleKey(ui.KeyEnter))
	require.Len(t, l.seen, 1)
	assert.Equal(t, 7, l.seen[0].(*ui.TextMenuItem).Data)
}

func TestBarChart_FillClamps(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	b := ui.NewBarChart(d, "CPU", 20)

	for _, tc := range []struct {
		value float64
		want  int
	}{{-5, 0}, {0, 0}, {50, 10}, {100, 20}, {250, 20}} {
		b.Value = tc.value
		assert.Equal(t, tc.want, b.Fill(), "value %v", tc.value)
	}
}

func TestFocusables_DepthFirstSkipsHidden(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	a := ui.NewCheckBox(d, nil, "a")
	b := ui.NewCheckBox(d, nil, "b")
	c := ui.NewCheckBox(d, nil, "c")
	hidden := ui.NewCheckBox(d, nil, "h")
	hidden.SetVisible(false)
	inner := ui.NewStackPanel(d, ui.Horizontal).Add(b, hidden)
	root := ui.NewStackPanel(d, ui.Vertical).Add(a, ui.NewTextBlock(d, "label"), inner, c)

	got := ui.Focusables(root)

	require.Len(t, got, 3)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Same(t, c, got[2])
}

func TestDisplay_ContentRectSitsBetweenButtonRows(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	d.PaddingX, d.PaddingY = 1, 0

	assert.Equal(t, ui.Rect{X: 1, Y: 2, W: 78, H: 20}, d.ContentRect())
}

func TestFocusable_FocusDoesNotMoveOrResize(t *testing.T) {
	d, _ := uitest.NewDisplay(80, 24)
	l := &changes{}
	location := ui.NewTextBox(d, l, "Location: ")
	location.MaxLength = 5
	tests := []struct {
		name string
		w    ui.Focusable
	}{
		{"checkbox", ui.NewCheckBox(d, l, "Scanlines")},
		{"textbox", location},
		{"spinner", ui.NewSpinnerBox(d, l, "Scheme: ", []string{"Green", "Amber"})},
		{"menu item", ui.NewTextMenuItem(d, l, "1: init", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.w.SetPos(ui.Point{X: 3, Y: 4})
			blurred := tt.w.Arrange()
			first := tt.w.Render()
			assert.Equal(t, first, tt.w.Render(), "render is repeatable")

			tt.w.Focus()
			assert.Equal(t, blurred, tt.w.Arrange(), "focus changed the size")
			assert.Equal(t, first, tt.w.Render(), "focus moved the widget")

			tt.w.Blur()
			assert.Equal(t, blurred, tt.w.Arrange(), "blur changed the size")
			assert.Equal(t, first, tt.w.Render())
		})
	}
}
