// Package ui holds the pterm colour and table helpers used outside the TUI
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/stage"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Stage colours a with the colour of stage k.
func Stage(k stage.Kind, a any) string {
	switch k {
	case stage.Focus:
		return Green(a)
	case stage.ShortBreak:
		return Cyan(a)
	case stage.LongBreak:
		return Magenta(a)
	}

	return Highlight(a)
}
