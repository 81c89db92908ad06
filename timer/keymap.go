package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	reset      key.Binding
	focus      key.Binding
	shortBreak key.Binding
	longBreak  key.Binding
	durations  key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	focus: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "focus"),
	),
	shortBreak: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "short break"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "long break"),
	),
	durations: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "durations"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
