package engine

import (
	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Stage returns the current stage.
func (e *Engine) Stage() stage.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Stage
}

// Running reports whether the countdown is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Running
}

// Durations returns the configured stage durations.
func (e *Engine) Durations() stage.Durations {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Durations
}

// LongBreakInterval returns the number of focus stages per long break.
func (e *Engine) LongBreakInterval() int {
	return e.interval
}

// FormattedRemaining returns the remaining time as MM:SS.
func (e *Engine) FormattedRemaining() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return timeutil.FormatClock(e.state.RemainingSeconds)
}

// ProgressFraction returns the elapsed share of the current stage's
// configured duration, in [0, 1].
func (e *Engine) ProgressFraction() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return progress(e.state)
}

// RemainingCyclesBeforeLongBreak returns how many focus stages must still be
// completed before the next long break.
func (e *Engine) RemainingCyclesBeforeLongBreak() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.state.CompletedFocusCount % e.interval
	if m == 0 {
		return e.interval
	}

	return e.interval - m
}

// PredictedNextStage returns the stage the engine will move to when the
// current one ends.
func (e *Engine) PredictedNextStage() stage.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Stage != stage.Focus {
		return stage.Focus
	}

	if (e.state.CompletedFocusCount+1)%e.interval == 0 {
		return stage.LongBreak
	}

	return stage.ShortBreak
}

// PredictedNextStageLabel returns the label of PredictedNextStage.
func (e *Engine) PredictedNextStageLabel() string {
	return e.PredictedNextStage().Label()
}

func progress(s State) float64 {
	total := s.Durations.Seconds(s.Stage)
	if total == 0 {
		return 0
	}

	return timeutil.Clamp01(
		float64(total-s.RemainingSeconds) / float64(total),
	)
}
