// Package stage defines the three Pomodoro stages and their duration table
package stage

import (
	"strings"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Kind identifies a timer stage.
type Kind string

const (
	Focus      Kind = "focus"
	ShortBreak Kind = "short_break"
	LongBreak  Kind = "long_break"
)

// Bounds for a configured stage duration, in minutes.
const (
	MinMinutes = 1
	MaxMinutes = 90
)

// Kinds lists every stage in cycle order.
var Kinds = []Kind{Focus, ShortBreak, LongBreak}

var labels = map[Kind]string{
	Focus:      "Focus",
	ShortBreak: "Short break",
	LongBreak:  "Long break",
}

var defaultMinutes = map[Kind]int{
	Focus:      25,
	ShortBreak: 5,
	LongBreak:  15,
}

// Valid reports whether k is one of the fixed stages.
func (k Kind) Valid() bool {
	_, ok := labels[k]
	return ok
}

// Label returns the display name of the stage.
func (k Kind) Label() string {
	return labels[k]
}

// DefaultMinutes returns the nominal duration of the stage.
func (k Kind) DefaultMinutes() int {
	return defaultMinutes[k]
}

func (k Kind) String() string {
	return string(k)
}

// Parse resolves a stage from its id, its label or its position in the
// cycle ("1", "2", "3").
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for i, k := range Kinds {
		if s == string(k) ||
			s == strings.ToLower(k.Label()) ||
			s == strings.ReplaceAll(string(k), "_", "-") ||
			s == string(rune('1'+i)) {
			return k, nil
		}
	}

	return "", ErrUnknownStage.Fmt(s)
}

// Durations holds the configured minutes of every stage.
type Durations struct {
	Focus      int `json:"focus"       yaml:"focus"`
	ShortBreak int `json:"short_break" yaml:"short_break"`
	LongBreak  int `json:"long_break"  yaml:"long_break"`
}

// DefaultDurations returns the nominal duration table.
func DefaultDurations() Durations {
	return Durations{
		Focus:      defaultMinutes[Focus],
		ShortBreak: defaultMinutes[ShortBreak],
		LongBreak:  defaultMinutes[LongBreak],
	}
}

// Get returns the minutes configured for k, or 0 for an unknown stage.
func (d Durations) Get(k Kind) int {
	switch k {
	case Focus:
		return d.Focus
	case ShortBreak:
		return d.ShortBreak
	case LongBreak:
		return d.LongBreak
	}

	return 0
}

// Set stores mins for k after clamping it to [MinMinutes, MaxMinutes].
// Unknown stages are ignored.
func (d *Durations) Set(k Kind, mins int) {
	mins = ClampMinutes(mins)

	switch k {
	case Focus:
		d.Focus = mins
	case ShortBreak:
		d.ShortBreak = mins
	case LongBreak:
		d.LongBreak = mins
	}
}

// Seconds returns the full countdown length of k.
func (d Durations) Seconds(k Kind) int {
	return timeutil.MinutesToSeconds(d.Get(k))
}

// Normalize returns a copy with every value clamped into range.
func (d Durations) Normalize() Durations {
	for _, k := range Kinds {
		d.Set(k, d.Get(k))
	}

	return d
}

// ClampMinutes restricts mins to [MinMinutes, MaxMinutes].
func ClampMinutes(mins int) int {
	return timeutil.Clamp(mins, MinMinutes, MaxMinutes)
}
