package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Success  key.Binding
	Partial  key.Binding
	NotYet   key.Binding
	Skipped  key.Binding
	Finish   key.Binding
	Checkin  key.Binding
	FreeDay  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "mark success"),
		),
		Partial: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "mark partial"),
		),
		NotYet: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "mark not yet"),
		),
		Skipped: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "mark skipped"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish planning"),
		),
		Checkin: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "submit check-in"),
		),
		FreeDay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle rest day"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the condensed help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Success, k.Partial, k.NotYet, k.Skipped, k.Checkin, k.Quit}
}

// FullHelp returns the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Help, k.Quit},
		{k.Success, k.Partial, k.NotYet, k.Skipped},
		{k.Finish, k.Checkin, k.FreeDay},
	}
}
