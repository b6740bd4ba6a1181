package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	HourFormat key.Binding
	Theme      key.Binding
	StartPause key.Binding
	Lap        key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		HourFormat: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "12/24h"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		StartPause: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space", "start/pause"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartPause, k.Lap, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartPause, k.Lap, k.Reset},
		{k.HourFormat, k.Theme},
		{k.Help, k.Quit},
	}
}
