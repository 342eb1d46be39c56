package term

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mfd/internal/mfd"
	"mfd/internal/ui"
)

type tickMsg time.Time

// StopMsg asks the program to quit. The host sends it when the frame loop
// has ended.
type StopMsg struct{}

// Model is the bubbletea side of the terminal front end. It forwards input
// to the bridge and repaints the last presented frame on a ticker.
type Model struct {
	bridge   *Bridge
	keys     KeyMap
	help     help.Model
	showHelp bool
	interval time.Duration
	width    int
	height   int
}

// NewModel returns a model repainting fps times per second.
func NewModel(b *Bridge, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		bridge:   b,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: time.Second / time.Duration(fps),
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) footerHeight() int {
	if !m.showHelp {
		return 0
	}
	return lipgloss.Height(m.help.View(m.keys))
}

func (m Model) resize() {
	m.bridge.Send(mfd.ResizeEvent(m.width, max(1, m.height-m.footerHeight())))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tick()
	case StopMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.bridge.Send(mfd.QuitEvent())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			m.resize()
			return m, nil
		}
		m.bridge.Send(mfd.KeyEvent(keyOf(msg)))
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	frame := m.bridge.Frame()
	if !m.showHelp {
		return frame
	}
	if s, ok := m.bridge.Scheme(); ok {
		m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Highlight.Hex())).Bold(true)
		m.help.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Foreground.Hex()))
		m.help.Styles.FullSeparator = m.help.Styles.FullDesc
	}
	return frame + "\n" + m.help.View(m.keys)
}

// keyOf converts a bubbletea key to a display key. Bubble Tea reports
// space as " ".
func keyOf(msg tea.KeyMsg) ui.Key {
	s := msg.String()
	if s == "space" {
		s = " "
	}
	return ui.Key(s)
}
