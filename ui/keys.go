package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the viewer's bindings.
type keyMap struct {
	Reload key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings returns the bindings shown in the status bar, in display order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Reload, k.Copy, k.Quit}
}
