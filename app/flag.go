package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Print one status line per second instead of the interactive view. Type ? and ENTER for commands",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each stage",
	}

	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of focus stages before a long break (default: 4)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include stages that ended after this time (e.g. '2 days ago'). Defaults to 7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include stages that ended before this time. Defaults to the end of today",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the records and summary as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the records and summary as YAML",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}
)
