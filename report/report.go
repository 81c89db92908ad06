// Package report prints user-facing results and errors
package report

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with an error status.
func Quit(err error) {
	Error(err)
	osutil.Exit(osutil.ExitError)
}
