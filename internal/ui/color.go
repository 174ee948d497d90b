// Package ui provides theme-aware colours and tables for command output
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the bright variant of each colour.
var DarkTheme bool

type palette struct {
	light pterm.Color
	dark  pterm.Color
}

func (p palette) paint(a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.light.Sprint(a)
}

var (
	green     = palette{pterm.FgGreen, pterm.FgLightGreen}
	cyan      = palette{pterm.FgCyan, pterm.FgLightCyan}
	magenta   = palette{pterm.FgMagenta, pterm.FgLightMagenta}
	blue      = palette{pterm.FgBlue, pterm.FgLightBlue}
	red       = palette{pterm.FgRed, pterm.FgLightRed}
	highlight = palette{pterm.FgBlack, pterm.FgLightWhite}
)

func Green(a any) string { return green.paint(a) }

// Cyan marks rest periods.
func Cyan(a any) string { return cyan.paint(a) }

// Magenta marks round rests.
func Magenta(a any) string { return magenta.paint(a) }

func Blue(a any) string { return blue.paint(a) }

func Red(a any) string { return red.paint(a) }

// Highlight is used for headings and totals.
func Highlight(a any) string { return highlight.paint(a) }
