package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings of the monitor screen.
type keyMap struct {
	TestMode key.Binding
	Verbose  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TestMode: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle test mode"),
		),
		Verbose: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "verbose log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TestMode, k.Verbose, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
