package term

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfd/internal/mfd"
	"mfd/internal/theme"
	"mfd/internal/ui"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f10":
		return tea.KeyMsg{Type: tea.KeyF10}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func rows(c *Canvas) []string {
	return strings.Split(c.PlainText(), "\n")
}

func TestCanvas_DrawTextClipsAtEdge(t *testing.T) {
	c := NewCanvas(10, 2)
	f := &ui.Font{Name: "normal"}

	r := c.DrawText(f, "hello world", ui.Point{X: 4, Y: 1}, theme.Green.Foreground)

	assert.Equal(t, ui.Rect{X: 4, Y: 1, W: 6, H: 1}, r)
	assert.Equal(t, "    hello ", rows(c)[1])
}

func TestCanvas_MeasureText(t *testing.T) {
	c := NewCanvas(10, 2)
	f := &ui.Font{Name: "normal"}

	assert.Equal(t, ui.Size{W: 3, H: 1}, c.MeasureText(f, "abc"))
	assert.Equal(t, ui.Size{W: 4, H: 1}, c.MeasureText(f, "日本"))
	assert.Equal(t, ui.Size{}, c.MeasureText(nil, "abc"))
	assert.Equal(t, ui.Size{}, c.MeasureText(f, ""))
}

func TestCanvas_SingleRowRectIsBracketed(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawRect(ui.Rect{X: 1, Y: 0, W: 3, H: 1}, theme.Green.Foreground, false)
	assert.Equal(t, " [ ] ", c.PlainText())

	c.DrawRect(ui.Rect{X: 2, Y: 0, W: 1, H: 1}, theme.Green.Foreground, true)
	assert.Equal(t, " [█] ", c.PlainText())
}

func TestCanvas_BoxOutline(t *testing.T) {
	c := NewCanvas(4, 3)
	c.DrawRect(ui.Rect{W: 4, H: 3}, theme.Green.Foreground, false)
	assert.Equal(t, []string{"┌──┐", "│  │", "└──┘"}, rows(c))
}

func TestCanvas_TranslucentLineTintsWithoutChangingText(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Fill(theme.RGB(0, 0, 0))
	c.DrawText(&ui.Font{}, "abc", ui.Point{}, theme.RGB(200, 200, 200))

	c.DrawHLine(0, 2, 0, theme.RGB(255, 255, 255).WithAlpha(128))

	assert.Equal(t, "abc", c.PlainText())
	cl := c.cells[0]
	assert.Greater(t, cl.bg.R, uint8(0))
	assert.Greater(t, cl.fg.R, uint8(200))
}

func TestCanvas_OutOfBoundsDrawingIsIgnored(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawText(&ui.Font{}, "x", ui.Point{X: 5, Y: 5}, theme.Green.Foreground)
	c.DrawHLine(-5, 10, 0, theme.Green.Highlight)
	c.DrawCircle(ui.Point{X: 1, Y: 0}, 3, theme.Green.Highlight, true)
	assert.Len(t, rows(c), 1)
}

func TestCanvas_ClipLimitsDrawingUntilLifted(t *testing.T) {
	c := NewCanvas(6, 3)
	f := &ui.Font{}
	prev := c.SetClip(ui.Rect{X: 1, Y: 1, W: 3, H: 1})
	assert.Equal(t, ui.Rect{}, prev)

	c.DrawText(f, "abcdef", ui.Point{Y: 1}, theme.Green.Foreground)
	c.DrawHLine(0, 5, 2, theme.Green.Foreground)
	assert.Equal(t, []string{"      ", " bcd  ", "      "}, rows(c))

	c.SetClip(prev)
	c.DrawText(f, "z", ui.Point{Y: 2}, theme.Green.Foreground)
	assert.Equal(t, "z     ", rows(c)[2])
}

func TestCanvas_ResizeClampsAndClears(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawText(&ui.Font{}, "abc", ui.Point{}, theme.Green.Foreground)
	c.Resize(0, -1)
	assert.Equal(t, ui.Rect{W: 1, H: 1}, c.Bounds())
	assert.Equal(t, " ", c.PlainText())
}

func TestBridge_PollDrainsInOrder(t *testing.T) {
	b := NewBridge(NewCanvas(4, 1), 4, quiet())
	b.Send(mfd.KeyEvent("a"))
	b.Send(mfd.ButtonEvent(2, true))

	got := b.Poll()
	require.Len(t, got, 2)
	assert.Equal(t, ui.Key("a"), got[0].Key)
	assert.Equal(t, mfd.EventButton, got[1].Kind)
	assert.Empty(t, b.Poll())
}

func TestBridge_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	b := NewBridge(NewCanvas(4, 1), 2, quiet())
	assert.True(t, b.Send(mfd.KeyEvent("1")))
	assert.True(t, b.Send(mfd.KeyEvent("2")))
	assert.False(t, b.Send(mfd.KeyEvent("3")))
	assert.Equal(t, int64(1), b.Dropped())
	assert.Len(t, b.Poll(), 2)
}

func TestBridge_PresentPublishesFrameAndScheme(t *testing.T) {
	c := NewCanvas(4, 1)
	b := NewBridge(c, 0, quiet())
	b.TrackScheme(func() theme.Scheme { return theme.Amber })
	assert.Equal(t, "", b.Frame())

	c.DrawText(&ui.Font{}, "MFD", ui.Point{}, theme.Amber.Foreground)
	b.Present()

	assert.Contains(t, b.Frame(), "MFD")
	s, ok := b.Scheme()
	assert.True(t, ok)
	assert.Equal(t, theme.Amber, s)
}

func TestModel_ForwardsKeys(t *testing.T) {
	b := NewBridge(NewCanvas(4, 1), 0, quiet())
	m := NewModel(b, 30)

	for _, k := range []string{"up", "enter", " ", "f1", "f10", "esc", "+"} {
		next, cmd := m.Update(keyMsg(k))
		m = next.(Model)
		assert.Nil(t, cmd, k)
	}

	var keys []ui.Key
	for _, ev := range b.Poll() {
		require.Equal(t, mfd.EventKey, ev.Kind)
		keys = append(keys, ev.Key)
	}
	assert.Equal(t, []ui.Key{ui.KeyUp, ui.KeyEnter, ui.KeySpace, ui.KeyF1, ui.KeyF10, ui.KeyEscape, ui.KeyPlus}, keys)
}

func TestModel_CtrlCQuits(t *testing.T) {
	b := NewBridge(NewCanvas(4, 1), 0, quiet())
	m := NewModel(b, 30)

	_, cmd := m.Update(keyMsg("ctrl+c"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	evs := b.Poll()
	require.Len(t, evs, 1)
	assert.Equal(t, mfd.EventQuit, evs[0].Kind)
}

func TestModel_WindowSizeAndHelpResize(t *testing.T) {
	b := NewBridge(NewCanvas(4, 1), 0, quiet())
	m := NewModel(b, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(keyMsg("?"))
	m = next.(Model)

	evs := b.Poll()
	require.Len(t, evs, 2)
	assert.Equal(t, mfd.ResizeEvent(100, 30), evs[0])
	assert.Equal(t, mfd.EventResize, evs[1].Kind)
	assert.Less(t, evs[1].Height, 30, "help footer takes rows from the display")
	assert.Contains(t, m.View(), "help")
}

func TestModel_StopMsgQuits(t *testing.T) {
	m := NewModel(NewBridge(NewCanvas(1, 1), 0, quiet()), 30)
	_, cmd := m.Update(StopMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestKeyMap_HelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 5)
	var n int
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 9, n)
}
