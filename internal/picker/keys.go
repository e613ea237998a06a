package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Cyclone1070/volpick/internal/tree"
)

// KeyMap defines the picker keybindings. Help is shown in the footer but
// handled by the owning screen.
type KeyMap struct {
	Tree tree.KeyMap

	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Cancel   key.Binding
	Confirm  key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default picker keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tree: tree.DefaultKeyMap(),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "confirm"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tree.Up, k.Tree.Down, k.Activate, k.Next, k.Cancel, k.Confirm, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tree.Up, k.Tree.Down, k.Tree.Home, k.Tree.End},
		{k.Activate, k.Tree.Expand, k.Tree.Collapse},
		{k.Next, k.Prev},
		{k.Cancel, k.Confirm, k.Help},
	}
}
