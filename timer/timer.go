// Package timer is the interactive bubbletea front end of the Pomodoro
// engine
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/ticker"
)

// ConfigMsg delivers a reloaded configuration to a running program.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// Timer is the bubbletea model. Every command and tick is applied on the
// program's update goroutine.
type Timer struct {
	engine   *engine.Engine
	cfg      *config.Config
	form     *huh.Form
	logger   *slog.Logger
	now      func() time.Time
	onEnter  func()
	input    durationInput
	style    Style
	help     help.Model
	progress progress.Model
	clock    clock
	debug    bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// WithDebug dumps every unhandled message to the log.
func WithDebug(debug bool) Option {
	return func(t *Timer) {
		t.debug = debug
	}
}

// WithNow replaces time.Now for the "until" hint.
func WithNow(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// OnStageEntered registers fn to be called when a stage is entered by a
// select or a reset rather than a transition.
func OnStageEntered(fn func()) Option {
	return func(t *Timer) {
		t.onEnter = fn
	}
}

// New returns a timer model for e, styled from cfg.
func New(e *engine.Engine, cfg *config.Config, opts ...Option) *Timer {
	t := &Timer{
		engine:   e,
		cfg:      cfg,
		logger:   slog.Default(),
		now:      time.Now,
		style:    newStyle(cfg),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		clock:    newClock(ticker.DefaultInterval),
	}

	for _, opt := range opts {
		opt(t)
	}

	e.Observe(t.logTransition)

	return t
}

// Init starts the clock if the engine is already running.
func (t *Timer) Init() tea.Cmd {
	return t.clock.sync(t.engine.Running())
}

func (t *Timer) logTransition(tr engine.Transition) {
	t.logger.Info(
		"stage finished",
		slog.String("stage", string(tr.From)),
		slog.String("next", string(tr.To)),
		slog.String("reason", string(tr.Reason)),
		slog.Int("completed_focus", tr.CompletedFocusCount),
		slog.Int("elapsed_seconds", tr.Elapsed),
	)
}

func (t *Timer) entered() {
	if t.onEnter != nil {
		t.onEnter()
	}
}
