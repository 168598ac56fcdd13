package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the app reacts to. Help is assembled per tab by
// Model.ShortHelp and Model.FullHelp.
type KeyMap struct {
	// tab navigation
	Tab      key.Binding
	ShiftTab key.Binding
	Left     key.Binding
	Right    key.Binding

	// list movement
	Up   key.Binding
	Down key.Binding

	// task actions, Tasks tab only
	Hold   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding

	Help key.Binding
	Quit key.Binding
}

func binding(help string, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab:      binding("tab", "next tab", "tab"),
		ShiftTab: binding("shift+tab", "prev tab", "shift+tab"),
		Left:     binding("h", "prev tab", "h"),
		Right:    binding("l", "next tab", "l"),

		Up:   binding("↑/k", "up", "up", "k"),
		Down: binding("↓/j", "down", "down", "j"),

		// holding space makes the terminal repeat the key; the hold
		// tracker treats a gap in repeats as a release
		Hold:   binding("hold space", "complete task", " "),
		Add:    binding("a", "new task", "a"),
		Edit:   binding("e", "edit task", "e"),
		Delete: binding("d", "delete task", "d"),

		Help: binding("?", "toggle help", "?"),
		Quit: binding("q", "quit", "q", "ctrl+c"),
	}
}
