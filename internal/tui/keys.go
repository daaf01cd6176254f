package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys the host handles itself. Everything else goes to
// the child model.
type KeyMap struct {
	Close key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close sheet")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
