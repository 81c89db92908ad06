// Package app defines the pomo command-line application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		pomo is a Pomodoro timer for the command-line. Focus stages alternate
		with short breaks, and every fourth focus stage is followed by a long
		break.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:  "history",
				Usage: "List the recorded stages. Defaults to the last 7 days",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					jsonFlag,
					yamlFlag,
				},
				Action: historyAction,
			},
			{
				Name:  "delete",
				Usage: "Delete the recorded stages in a time range",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					yesFlag,
				},
				Action: deleteAction,
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			sessionCmdFlag,
			headlessFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pomoApp
}
