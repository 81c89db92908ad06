package config

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/stage"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus             string
	ShortBreak        string
	LongBreak         string
	SessionCmd        string
	LongBreakInterval uint
	Headless          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:             ctx.String("focus"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			SessionCmd:        ctx.String("session-cmd"),
			Headless:          ctx.Bool("headless"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI.Headless = opts.Headless

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := map[stage.Kind]string{
		stage.Focus:      opts.Focus,
		stage.ShortBreak: opts.ShortBreak,
		stage.LongBreak:  opts.LongBreak,
	}

	for _, k := range stage.Kinds {
		s := durations[k]
		if s == "" {
			continue
		}

		mins, err := parseMinutes(s)
		if err != nil {
			return errInvalidCLIDuration.Fmt(k.Label(), s)
		}

		c.stagePtr(k).Minutes = mins
	}

	return nil
}

// parseMinutes accepts a plain number of minutes or a Go duration string.
func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(math.Round(f)), nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}

	return int(math.Round(dur.Minutes())), nil
}
