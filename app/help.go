package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// helpSection is a titled block of the help template. Bodies may use
// text/template actions understood by urfave/cli.
type helpSection struct {
	title string
	body  string
}

func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"},
		{"AUTHOR", "{{if len .Authors}}\t\t{{range .Authors}}{{ . }}{{end}}{{end}}"},
		{"VERSION", "{{if .Version}}\t\t{{.Version}}{{end}}"},
		{"COMMANDS", fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		)},
		{"OPTIONS", fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}} {{.DefaultText}}"),
		)},
		{"KEYS", indent(keyHelp)},
		{"ENVIRONMENTAL VARIABLES", indent(envHelp)},
		{"WEBSITE", "\t\thttps://github.com/ayoisaiah/pomo"},
	}

	var b strings.Builder

	for _, s := range sections {
		fmt.Fprintf(&b, "%s\n%s\n\n", pterm.Yellow(s.title), s.body)
	}

	return b.String()
}

func indent(lines []string) string {
	return "\t\t" + strings.Join(lines, "\n\t\t")
}

var keyHelp = []string{
	"space, p: start or pause the timer",
	"s: skip to the next stage",
	"r: reset the session",
	"1, 2, 3: select the focus, short break or long break stage",
	"d: edit the stage durations",
	"q, ctrl+c: quit",
}

var envHelp = []string{
	"POMO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.",
	"POMO_ENV: use a separate config file, database and log file, e.g. config_<env>.yml.",
	"POMO_DEBUG: set to any value to write debug logs.",
	"POMO_UPDATE_NOTIFIER: set to any value to enable update notifications when using the -v or --version flag.",
}
