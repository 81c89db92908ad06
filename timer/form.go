package timer

import (
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomo/internal/stage"
)

// durationInput holds the raw text of the duration form.
type durationInput struct {
	focus      string
	shortBreak string
	longBreak  string
}

func (d *durationInput) field(k stage.Kind) *string {
	switch k {
	case stage.ShortBreak:
		return &d.shortBreak
	case stage.LongBreak:
		return &d.longBreak
	}

	return &d.focus
}

// openForm builds the duration form pre-filled with the current minutes.
func (t *Timer) openForm() tea.Cmd {
	durations := t.engine.Durations()

	fields := make([]huh.Field, 0, len(stage.Kinds))

	for _, k := range stage.Kinds {
		v := t.input.field(k)
		*v = strconv.Itoa(durations.Get(k))

		fields = append(fields, huh.NewInput().
			Key(string(k)).
			Title(k.Label()+" (minutes)").
			Value(v),
		)
	}

	t.form = huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(maxWidth / 2).
		WithShowHelp(false)

	return t.form.Init()
}

func (t *Timer) closeForm() {
	t.form = nil
}

// applyDurations passes every field through the engine. A value that is not
// a number leaves its stage unchanged; out of range values are clamped.
func (t *Timer) applyDurations() {
	for _, k := range stage.Kinds {
		v := *t.input.field(k)

		if err := t.engine.SetDuration(k, v); err != nil {
			t.logger.Debug(
				"duration ignored",
				slog.String("stage", string(k)),
				slog.Any("error", err),
			)
		}
	}
}

// updateForm forwards msg to the open form and applies or discards it once
// the form is done.
func (t *Timer) updateForm(msg tea.Msg) tea.Cmd {
	model, cmd := t.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		t.applyDurations()
		t.closeForm()

		// the form's own submit command would end the program
		return t.clock.sync(t.engine.Running())
	case huh.StateAborted:
		t.closeForm()

		return nil
	}

	return cmd
}
