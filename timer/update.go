package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomo/internal/stage"
)

// handleTick applies a tick from the current clock generation and schedules
// the next one.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !t.clock.accept(msg) {
		return t, nil
	}

	t.engine.Tick()

	if !t.engine.Running() {
		t.clock.stop()
		return t, nil
	}

	return t, t.clock.tick()
}

// handleConfig applies reloaded stage durations. A paused countdown on an
// edited stage is resynchronised by the engine.
func (t *Timer) handleConfig(msg ConfigMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		t.logger.Warn("config reload failed", slog.Any("error", msg.Err))
		return t, nil
	}

	for _, k := range stage.Kinds {
		mins := float64(msg.Config.Stage(k).Minutes)

		if err := t.engine.SetDurationMinutes(k, mins); err != nil {
			t.logger.Warn("config reload failed", slog.Any("error", err))
		}
	}

	t.cfg = msg.Config
	t.style = newStyle(msg.Config)

	t.logger.Info("config reloaded")

	return t, nil
}

func (t *Timer) selectStage(k stage.Kind) tea.Cmd {
	_ = t.engine.SelectStage(k)
	t.entered()

	return t.clock.sync(t.engine.Running())
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.form != nil {
		switch {
		case msg.String() == "ctrl+c":
			return t, tea.Quit
		case key.Matches(msg, defaultKeymap.esc):
			t.closeForm()
			return t, nil
		}

		return t, t.updateForm(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		t.engine.ToggleRunning()

	case key.Matches(msg, defaultKeymap.skip):
		t.engine.Skip()

	case key.Matches(msg, defaultKeymap.reset):
		t.engine.Reset()
		t.entered()

	case key.Matches(msg, defaultKeymap.focus):
		return t, t.selectStage(stage.Focus)

	case key.Matches(msg, defaultKeymap.shortBreak):
		return t, t.selectStage(stage.ShortBreak)

	case key.Matches(msg, defaultKeymap.longBreak):
		return t, t.selectStage(stage.LongBreak)

	case key.Matches(msg, defaultKeymap.durations):
		return t, t.openForm()

	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit

	default:
		return t, nil
	}

	return t, t.clock.sync(t.engine.Running())
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case ConfigMsg:
		return t.handleConfig(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	if t.form != nil {
		return t, t.updateForm(msg)
	}

	if t.debug {
		t.logger.Debug(spew.Sdump(msg))
	}

	return t, nil
}
