package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo's key bindings
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Home     key.Binding
	Help     key.Binding
	FullHelp key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "previous page"),
		),
		Home: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "back to start"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		FullHelp: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Home},
		{k.Help, k.FullHelp, k.Quit},
	}
}
