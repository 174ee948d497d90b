package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space/p", "pause/resume"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
