package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the workspace shell. Printable keys
// always go to the active input line, so navigation uses arrows only.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Submit      key.Binding // Search: open the selected tool. Tool: run it.
	Back        key.Binding
	ClearRecent key.Binding
	Quit        key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open/run"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	ClearRecent: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "clear recent"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

func (k KeyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.ClearRecent, k.Quit}
}

func (k KeyMap) toolHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Quit}
}
