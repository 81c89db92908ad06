package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/term"
)

const asciiLogo = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int
}

// isTerminal reports whether the first-run prompt can be shown.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It does nothing once the config file exists or when
// stdin is not a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isTerminal() {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure pomo for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'pomo edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus stage length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.FocusMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
				).
				Value(&opts.ShortBreakMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long break length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
				).
				Value(&opts.LongBreakMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus stages before a long break").
				Options(
					huh.NewOption("4 stages", 4).Selected(true),
					huh.NewOption("6 stages", 6),
					huh.NewOption("8 stages", 8),
				).
				Value(&opts.LongBreakInterval),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Focus.Minutes = opts.FocusMinutes
	c.ShortBreak.Minutes = opts.ShortBreakMinutes
	c.LongBreak.Minutes = opts.LongBreakMinutes
	c.Settings.LongBreakInterval = opts.LongBreakInterval
}
