package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level shortcuts. Widget controls live in
// components.KeyMap.
type KeyMap struct {
	Open        key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
	}
}

// helpKeys combines widget and application bindings for the help view.
type helpKeys struct {
	widget []key.Binding
	app    KeyMap
}

// ShortHelp returns the one-line help.
func (h helpKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), h.widget...), h.app.Back, h.app.Help, h.app.Quit)
}

// FullHelp returns the expanded help.
func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.widget,
		{h.app.Back, h.app.Help, h.app.Quit, h.app.ForceQuit, h.app.ClearScreen},
	}
}
