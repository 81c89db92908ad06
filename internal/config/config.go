// Package config assembles the timer settings from the config file,
// command-line flags and the first-run prompt
package config

import (
	"io"
	"os"

	"github.com/ayoisaiah/pomo/internal/stage"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus      StageConfig    `mapstructure:"focus"`
		ShortBreak StageConfig    `mapstructure:"short_break"`
		LongBreak  StageConfig    `mapstructure:"long_break"`
		Settings   SettingsConfig `mapstructure:"settings"`
		Display    DisplayConfig  `mapstructure:"display"`
		CLI        CLIConfig      `mapstructure:"-"`
	}

	// StageConfig holds the settings of a single stage.
	StageConfig struct {
		Message string `mapstructure:"message"`
		Color   string `mapstructure:"color"`
		Minutes int    `mapstructure:"minutes"`
	}

	// SettingsConfig holds timer behaviour settings.
	SettingsConfig struct {
		Cmd               string `mapstructure:"cmd"`
		LongBreakInterval int    `mapstructure:"long_break_interval"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds options that only exist on the command line.
	CLIConfig struct {
		Headless bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Stage returns the settings for k.
func (c *Config) Stage(k stage.Kind) StageConfig {
	switch k {
	case stage.Focus:
		return c.Focus
	case stage.ShortBreak:
		return c.ShortBreak
	case stage.LongBreak:
		return c.LongBreak
	}

	return StageConfig{}
}

// Durations returns the configured minutes of every stage.
func (c *Config) Durations() stage.Durations {
	return stage.Durations{
		Focus:      c.Focus.Minutes,
		ShortBreak: c.ShortBreak.Minutes,
		LongBreak:  c.LongBreak.Minutes,
	}
}

// stagePtr returns a pointer to the settings for k so options can update
// them in place.
func (c *Config) stagePtr(k stage.Kind) *StageConfig {
	switch k {
	case stage.Focus:
		return &c.Focus
	case stage.ShortBreak:
		return &c.ShortBreak
	case stage.LongBreak:
		return &c.LongBreak
	}

	return nil
}
