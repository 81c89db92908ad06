package timer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/stage"
)

func testConfig() *config.Config {
	return &config.Config{
		Focus:      config.StageConfig{Minutes: 25, Message: "Focus on your task", Color: "#B0DB43"},
		ShortBreak: config.StageConfig{Minutes: 5, Message: "Take a breather", Color: "#12EAEA"},
		LongBreak:  config.StageConfig{Minutes: 15, Message: "Take a long break", Color: "#C492B1"},
		Settings:   config.SettingsConfig{LongBreakInterval: 4},
		Display:    config.DisplayConfig{DarkTheme: true, TwentyFourHour: true},
	}
}

var noon = time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC)

func newTestTimer(opts ...Option) (*Timer, *engine.Engine) {
	e := engine.New()

	opts = append([]Option{
		WithNow(func() time.Time { return noon }),
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
	}, opts...)

	return New(e, testConfig(), opts...), e
}

func press(t *Timer, keys string) tea.Cmd {
	var msg tea.KeyMsg

	switch keys {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}

	_, cmd := t.Update(msg)

	return cmd
}

// currentTick returns a tick from the clock's live generation.
func currentTick(t *Timer) tickMsg {
	return tickMsg{id: t.clock.id, time: noon}
}

func TestInitPaused(t *testing.T) {
	tm, _ := newTestTimer()

	assert.Nil(t, tm.Init())
	assert.False(t, tm.clock.running)

	view := tm.View()

	assert.Contains(t, view, "FOCUS")
	assert.Contains(t, view, "[Paused]")
	assert.Contains(t, view, "(1/4)")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Focus on your task")
	assert.Contains(t, view, "4 focus sessions until long break · Next: Short break")
}

func TestToggleStartsClock(t *testing.T) {
	tm, e := newTestTimer()

	cmd := press(tm, " ")

	require.NotNil(t, cmd)
	assert.True(t, e.Running())
	assert.True(t, tm.clock.running)

	_, cmd = tm.Update(currentTick(tm))

	assert.NotNil(t, cmd)
	assert.Equal(t, 1499, e.State().RemainingSeconds)
	assert.Contains(t, tm.View(), "24:59")
	assert.Contains(t, tm.View(), "until 12:24:59")
}

func TestStaleTicksAreDropped(t *testing.T) {
	tm, e := newTestTimer()

	press(tm, "p")

	stale := currentTick(tm)

	// pause and resume: the tick scheduled before the pause is stale
	press(tm, "p")
	assert.False(t, tm.clock.running)

	_, cmd := tm.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 1500, e.State().RemainingSeconds)

	press(tm, "p")

	_, cmd = tm.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 1500, e.State().RemainingSeconds)

	// only the live generation counts, so restarts never double the rate
	tm.Update(currentTick(tm))
	assert.Equal(t, 1499, e.State().RemainingSeconds)
}

func TestSkipKeepsClockRunning(t *testing.T) {
	tm, e := newTestTimer()

	cmd := press(tm, "s")

	require.NotNil(t, cmd)
	assert.Equal(t, stage.ShortBreak, e.Stage())
	assert.True(t, e.Running())

	id := tm.clock.id

	// skipping again while running does not start a second clock
	press(tm, "s")
	assert.Equal(t, id, tm.clock.id)
	assert.Equal(t, stage.Focus, e.Stage())
}

func TestTickAdvancesStage(t *testing.T) {
	tm, e := newTestTimer()

	require.NoError(t, e.SetDuration(stage.Focus, "1"))
	press(tm, " ")

	for i := 0; i < 60; i++ {
		tm.Update(currentTick(tm))
	}

	assert.Equal(t, stage.ShortBreak, e.Stage())
	assert.True(t, tm.clock.running)
	assert.Contains(t, tm.View(), "SHORT BREAK")
	assert.Contains(t, tm.View(), "3 focus sessions until long break · Next: Focus")
}

func TestSelectAndReset(t *testing.T) {
	var entered int

	tm, e := newTestTimer(OnStageEntered(func() { entered++ }))

	press(tm, " ")
	press(tm, "3")

	assert.Equal(t, stage.LongBreak, e.Stage())
	assert.False(t, e.Running())
	assert.False(t, tm.clock.running)
	assert.Contains(t, tm.View(), "15:00")

	press(tm, "2")
	assert.Equal(t, stage.ShortBreak, e.Stage())

	press(tm, "1")
	assert.Equal(t, stage.Focus, e.Stage())

	press(tm, "s")
	press(tm, "r")

	assert.Equal(t, engine.New().State(), e.State())
	assert.False(t, tm.clock.running)
	assert.Equal(t, 4, entered)
}

func TestDurationForm(t *testing.T) {
	tm, e := newTestTimer()

	cmd := press(tm, "d")

	require.NotNil(t, tm.form)
	_ = cmd

	assert.Equal(t, "25", tm.input.focus)
	assert.Equal(t, "5", tm.input.shortBreak)
	assert.Equal(t, "15", tm.input.longBreak)

	// keys go to the form while it is open
	press(tm, "s")
	assert.Equal(t, stage.Focus, e.Stage())

	press(tm, "esc")
	assert.Nil(t, tm.form)
}

func TestApplyDurations(t *testing.T) {
	tm, e := newTestTimer()

	tm.input = durationInput{
		focus:      "abc",
		shortBreak: "150",
		longBreak:  "7",
	}

	tm.applyDurations()

	assert.Equal(t, stage.Durations{Focus: 25, ShortBreak: 90, LongBreak: 7}, e.Durations())
}

func TestConfigReload(t *testing.T) {
	tm, e := newTestTimer()

	cfg := testConfig()
	cfg.Focus.Minutes = 50
	cfg.LongBreak.Minutes = 20

	tm.Update(ConfigMsg{Config: cfg})

	assert.Equal(t, stage.Durations{Focus: 50, ShortBreak: 5, LongBreak: 20}, e.Durations())
	assert.Equal(t, 3000, e.State().RemainingSeconds)

	tm.Update(ConfigMsg{Err: assert.AnError})
	assert.Equal(t, 50, e.Durations().Focus)
}

func TestQuit(t *testing.T) {
	tm, _ := newTestTimer()

	cmd := press(tm, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	press(tm, "d")

	cmd = press(tm, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	tm, _ := newTestTimer()

	tm.Update(tea.WindowSizeMsg{Width: 60})
	assert.Equal(t, 52, tm.progress.Width)

	tm.Update(tea.WindowSizeMsg{Width: 300})
	assert.Equal(t, maxWidth, tm.progress.Width)
}

func TestTwelveHourClock(t *testing.T) {
	tm, _ := newTestTimer()
	tm.cfg.Display.TwentyFourHour = false

	press(tm, " ")

	assert.Contains(t, tm.View(), "until 12:25:00 PM")
}
