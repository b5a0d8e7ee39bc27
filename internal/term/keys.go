package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PlayPause key.Binding
	Next      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Max       key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PlayPause: key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "play/pause")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next frame")),
		Faster:    key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+", "faster")),
		Slower:    key.NewBinding(key.WithKeys("-", "down"), key.WithHelp("-", "slower")),
		Max:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "max fps")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Next, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Next},
		{k.Faster, k.Slower, k.Max},
		{k.Reset, k.Help, k.Quit},
	}
}
