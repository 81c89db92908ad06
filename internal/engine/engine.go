// Package engine implements the Pomodoro stage state machine: stage
// transitions, per-stage durations, the countdown and the values derived
// from them. It holds no timer of its own; a tick source calls Tick once per
// second while the engine is running.
package engine

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// DefaultLongBreakInterval is the number of focus stages per long break.
const DefaultLongBreakInterval = 4

// Reason describes why a stage ended.
type Reason string

const (
	ReasonCompleted Reason = "completed"
	ReasonSkipped   Reason = "skipped"
)

// State is a snapshot of the engine.
type State struct {
	Stage               stage.Kind      `json:"stage"`
	Durations           stage.Durations `json:"durations"`
	RemainingSeconds    int             `json:"remaining_seconds"`
	CompletedFocusCount int             `json:"completed_focus_count"`
	Running             bool            `json:"running"`
}

// Transition describes a stage change produced by a zero-crossing or a skip.
type Transition struct {
	From   stage.Kind
	To     stage.Kind
	Reason Reason
	// CompletedFocusCount is the counter value after the transition.
	CompletedFocusCount int
	// Planned is the full length in seconds of the stage instance that ended.
	Planned int
	// Elapsed is how many of those seconds were counted down.
	Elapsed int
}

// TickResult reports the outcome of a single tick.
type TickResult struct {
	Transition Transition
	Remaining  int
	Advanced   bool
}

// Observer is notified of every transition, after the engine state has been
// updated.
type Observer func(Transition)

// Option configures an Engine.
type Option func(*Engine)

// Engine owns the timer state. All methods are safe for concurrent use and
// each command runs to completion before the next one starts.
type Engine struct {
	observers []Observer
	state     State
	defaults  stage.Durations
	// planned is the full length of the current stage instance in seconds.
	planned  int
	interval int
	mu       sync.Mutex
}

// WithDefaults sets the durations used at construction and restored by
// Reset.
func WithDefaults(d stage.Durations) Option {
	return func(e *Engine) {
		e.defaults = d.Normalize()
	}
}

// WithLongBreakInterval sets how many focus stages precede a long break.
// Values below 1 are ignored.
func WithLongBreakInterval(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.interval = n
		}
	}
}

// WithObserver registers fn to be called on every transition.
func WithObserver(fn Observer) Option {
	return func(e *Engine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// New creates an engine at the start of a session: focus stage, paused, full
// focus duration remaining.
func New(opts ...Option) *Engine {
	e := &Engine{
		defaults: stage.DefaultDurations(),
		interval: DefaultLongBreakInterval,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.resetLocked()

	return e
}

// Observe registers fn to be called on every subsequent transition.
func (e *Engine) Observe(fn Observer) {
	if fn == nil {
		return
	}

	e.mu.Lock()
	e.observers = append(e.observers, fn)
	e.mu.Unlock()
}

// SetDuration parses value as a number of minutes and stores it for k,
// rounded and clamped to the allowed range. A value that is not a number, or
// an unknown stage, leaves the state untouched and returns an error the
// caller is free to ignore.
func (e *Engine) SetDuration(k stage.Kind, value string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return ErrInvalidDuration.Fmt(value)
	}

	return e.SetDurationMinutes(k, f)
}

// SetDurationMinutes stores mins for k, rounded and clamped. If the engine
// is paused on stage k the countdown is resynchronised to the new length;
// a running countdown keeps its current total until the stage is next
// entered.
func (e *Engine) SetDurationMinutes(k stage.Kind, mins float64) error {
	if !k.Valid() {
		return stage.ErrUnknownStage.Fmt(string(k))
	}

	if math.IsNaN(mins) {
		return ErrInvalidDuration.Fmt(strconv.FormatFloat(mins, 'g', -1, 64))
	}

	// clamp before rounding so huge values never overflow int
	mins = math.Max(stage.MinMinutes, math.Min(stage.MaxMinutes, mins))

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Durations.Set(k, timeutil.Round(mins))

	if !e.state.Running && e.state.Stage == k {
		e.enterLocked(k)
	}

	return nil
}

// SelectStage pauses the timer and switches to stage k with its full
// duration. The completed focus counter is not affected. Unknown stages are
// rejected without changing state.
func (e *Engine) SelectStage(k stage.Kind) error {
	if !k.Valid() {
		return stage.ErrUnknownStage.Fmt(string(k))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Running = false
	e.enterLocked(k)

	return nil
}

// ToggleRunning starts a paused timer or pauses a running one and returns
// the new running state.
func (e *Engine) ToggleRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Running = !e.state.Running

	return e.state.Running
}

// Tick counts one second down. It does nothing while paused. When the
// countdown reaches zero the engine advances to the next stage before Tick
// returns, so a zero remaining time is never observable while running.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()

	if !e.state.Running {
		res := TickResult{Remaining: e.state.RemainingSeconds}
		e.mu.Unlock()

		return res
	}

	if e.state.RemainingSeconds > 1 {
		e.state.RemainingSeconds--
		res := TickResult{Remaining: e.state.RemainingSeconds}
		e.mu.Unlock()

		return res
	}

	e.state.RemainingSeconds = 0
	tr := e.advanceLocked(ReasonCompleted)
	res := TickResult{
		Remaining:  e.state.RemainingSeconds,
		Advanced:   true,
		Transition: tr,
	}
	observers := e.observers
	e.mu.Unlock()

	notify(observers, tr)

	return res
}

// Skip ends the current stage immediately and starts the next one.
func (e *Engine) Skip() Transition {
	e.mu.Lock()

	e.state.Running = false
	tr := e.advanceLocked(ReasonSkipped)
	observers := e.observers
	e.mu.Unlock()

	notify(observers, tr)

	return tr
}

// Reset restores the initial session state, including the default
// durations.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()
}

func (e *Engine) resetLocked() {
	e.state = State{
		Durations: e.defaults,
	}

	e.enterLocked(stage.Focus)
}

// enterLocked makes k the current stage with its full duration remaining.
func (e *Engine) enterLocked(k stage.Kind) {
	e.state.Stage = k
	e.planned = e.state.Durations.Seconds(k)
	e.state.RemainingSeconds = e.planned
}

// advanceLocked applies the stage completion rules and keeps the timer
// running into the next stage.
func (e *Engine) advanceLocked(reason Reason) Transition {
	from := e.state.Stage
	elapsed := max(e.planned-e.state.RemainingSeconds, 0)

	var next stage.Kind

	switch from {
	case stage.Focus:
		e.state.CompletedFocusCount++

		if e.state.CompletedFocusCount%e.interval == 0 {
			next = stage.LongBreak
		} else {
			next = stage.ShortBreak
		}
	default:
		next = stage.Focus
	}

	tr := Transition{
		From:                from,
		To:                  next,
		Reason:              reason,
		CompletedFocusCount: e.state.CompletedFocusCount,
		Planned:             e.planned,
		Elapsed:             elapsed,
	}

	e.enterLocked(next)
	e.state.Running = true

	return tr
}

func notify(observers []Observer, tr Transition) {
	for _, fn := range observers {
		fn(tr)
	}
}
