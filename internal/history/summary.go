package history

import (
	"time"

	"github.com/hako/durafmt"

	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/store"
)

// Summary aggregates a set of records.
type Summary struct {
	FocusTime      time.Duration `json:"focus_time"      yaml:"focus_time"`
	BreakTime      time.Duration `json:"break_time"      yaml:"break_time"`
	CompletedFocus int           `json:"completed_focus" yaml:"completed_focus"`
	SkippedFocus   int           `json:"skipped_focus"   yaml:"skipped_focus"`
	Breaks         int           `json:"breaks"          yaml:"breaks"`
}

// Summarize totals the counted down time per stage category and the number
// of completed and skipped focus stages.
func Summarize(records []store.Record) Summary {
	var s Summary

	for i := range records {
		r := &records[i]

		if r.Stage == stage.Focus {
			s.FocusTime += r.Elapsed()

			if r.Skipped {
				s.SkippedFocus++
			} else {
				s.CompletedFocus++
			}

			continue
		}

		s.BreakTime += r.Elapsed()
		s.Breaks++
	}

	return s
}

// FormatDuration renders d with its two most significant units, in hours at
// most.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}
