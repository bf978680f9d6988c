package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget controls.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding

	Grow   key.Binding
	Shrink key.Binding
	Cycle  key.Binding
	Reset  key.Binding

	Next   key.Binding
	Prev   key.Binding
	Jump   key.Binding
	Toggle key.Binding

	EpsUp     key.Binding
	EpsDown   key.Binding
	DeltaUp   key.Binding
	DeltaDown key.Binding
	Bands     key.Binding
	Trace     key.Binding
}

// DefaultKeyMap returns the default widget bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Place: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "place probe"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next example"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l/n", "next step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h/p", "previous step"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to step"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle subcover"),
		),
		EpsUp: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("e/E", "ε"),
		),
		EpsDown: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e/E", "ε"),
		),
		DeltaUp: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("d/D", "δ"),
		),
		DeltaDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d/D", "δ"),
		),
		Bands: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bands"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace"),
		),
	}
}

// withHelp returns b with a different help text.
func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}
