package term

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the keys the terminal front end understands. Everything not
// consumed here is forwarded to the display as a key event.
type KeyMap struct {
	Apps     key.Binding
	Pages    key.Binding
	Navigate key.Binding
	Adjust   key.Binding
	Activate key.Binding
	Zoom     key.Binding
	Exit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Apps: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4", "f5"),
			key.WithHelp("F1-F5", "application"),
		),
		Pages: key.NewBinding(
			key.WithKeys("f6", "f7", "f8", "f9", "f10"),
			key.WithHelp("F6-F10", "page"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "tab", "shift+tab"),
			key.WithHelp("↑/↓/tab", "focus"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "adjust"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("+", "=", "-"),
			key.WithHelp("+/-", "zoom"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apps, k.Pages, k.Navigate, k.Exit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Apps, k.Pages},
		{k.Navigate, k.Adjust, k.Activate, k.Zoom},
		{k.Exit, k.Help, k.Quit},
	}
}
