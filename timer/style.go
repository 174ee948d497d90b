package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/intervals/internal/config"
	"github.com/ayoisaiah/intervals/internal/engine"
)

// Style holds the lipgloss styles used to render the timer.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Phase     map[engine.Phase]lipgloss.Style
}

func newStyle(d config.DisplayConfig) Style {
	text := lipgloss.Color("#1C1C1C")
	hint := lipgloss.Color("#6C6C6C")

	if d.DarkTheme {
		text = lipgloss.Color("#FFFFFF")
		hint = lipgloss.Color("#9E9E9E")
	}

	label := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(color)).
			Bold(true).
			Padding(0, 1).
			MarginRight(1)
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Foreground(text).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Phase: map[engine.Phase]lipgloss.Style{
			engine.PhaseActive:    label(d.Colors.Active),
			engine.PhaseRest:      label(d.Colors.Rest),
			engine.PhaseRoundRest: label(d.Colors.RoundRest),
			engine.PhaseCountdown: label(d.Colors.Active),
		},
	}
}
