package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyFocusMinutes      = "focus.minutes"
	keyFocusMessage      = "focus.message"
	keyFocusColor        = "focus.color"
	keyShortBreakMinutes = "short_break.minutes"
	keyShortBreakMessage = "short_break.message"
	keyShortBreakColor   = "short_break.color"
	keyLongBreakMinutes  = "long_break.minutes"
	keyLongBreakMessage  = "long_break.message"
	keyLongBreakColor    = "long_break.color"
	keyLongBreakInterval = "settings.long_break_interval"
	keySessionCmd        = "settings.cmd"
	keyTwentyFourHour    = "display.24hr_clock"
	keyDarkTheme         = "display.dark_theme"
)

const defaultLongBreakCount = 4

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if the file does not
// exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		seedViper(v, c)

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	return v
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyFocusMinutes, 25)
	v.SetDefault(keyFocusMessage, "Focus on your task")
	v.SetDefault(keyFocusColor, "#B0DB43")
	v.SetDefault(keyShortBreakMinutes, 5)
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyLongBreakMinutes, 15)
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keyLongBreakInterval, defaultLongBreakCount)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
}

// seedViper carries values gathered before the file existed (the first-run
// prompt) into the file that is about to be written.
func seedViper(v *viper.Viper, c *Config) {
	seeds := map[string]int{
		keyFocusMinutes:      c.Focus.Minutes,
		keyShortBreakMinutes: c.ShortBreak.Minutes,
		keyLongBreakMinutes:  c.LongBreak.Minutes,
		keyLongBreakInterval: c.Settings.LongBreakInterval,
	}

	for key, val := range seeds {
		if val != 0 {
			v.Set(key, val)
		}
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errUnmarshalConfig.Wrap(err)
	}

	return nil
}
