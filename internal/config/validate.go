package config

import (
	"regexp"
	"strings"

	"github.com/ayoisaiah/pomo/internal/stage"
)

var (
	// Valid long break intervals.
	minLongBreakInterval = 2
	maxLongBreakInterval = 10

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	for _, k := range stage.Kinds {
		if err := validateStageConfig(c.Stage(k), k); err != nil {
			return err
		}
	}

	return c.validateSettings()
}

// validateStageConfig validates an individual StageConfig.
func validateStageConfig(sc StageConfig, k stage.Kind) error {
	name := strings.ToLower(k.Label())

	if sc.Minutes < stage.MinMinutes || sc.Minutes > stage.MaxMinutes {
		return errInvalidDuration.Fmt(
			name,
			stage.MinMinutes,
			stage.MaxMinutes,
			sc.Minutes,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(name)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(name, sc.Color)
	}

	return nil
}

// validateSettings validates the SettingsConfig.
func (c *Config) validateSettings() error {
	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
			c.Settings.LongBreakInterval,
		)
	}

	return nil
}
