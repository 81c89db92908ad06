// Package timeutil provides utility functions for the time values the timer
// displays and stores.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinutesToSeconds converts whole minutes to seconds.
func MinutesToSeconds(mins int) int {
	return mins * secondsInAMinute
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		return 0, 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// FormatClock formats a seconds value as MM:SS. Minutes are padded to two
// digits and grow wider when needed.
func FormatClock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// Clamp restricts val to the closed interval [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}

// Clamp01 restricts f to [0, 1]. NaN maps to 0.
func Clamp01(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// KeyLayout is RFC 3339 with a fixed nine digit fraction, so keys in UTC
// sort in time order byte by byte.
const KeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(KeyLayout))
}
