package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/pomo/internal/stage"
)

func (t *Timer) timeFormat() string {
	if t.cfg.Display.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (t *Timer) headerView() string {
	var s strings.Builder

	state := t.engine.State()

	s.WriteString(t.style.Stage[state.Stage].Render())

	if !state.Running {
		s.WriteString(t.style.Secondary.Render("[Paused]"))
	} else {
		end := t.now().Add(time.Duration(state.RemainingSeconds) * time.Second)

		s.WriteString(
			strings.TrimSpace(
				t.style.Hint.Render("until " + end.Format(t.timeFormat())),
			),
		)
	}

	if state.Stage == stage.Focus {
		interval := t.engine.LongBreakInterval()

		s.WriteString(
			t.style.Hint.Render(
				fmt.Sprintf(
					"(%d/%d)",
					state.CompletedFocusCount%interval+1,
					interval,
				),
			),
		)
	}

	return s.String()
}

func (t *Timer) cycleView() string {
	n := t.engine.RemainingCyclesBeforeLongBreak()

	noun := "sessions"
	if n == 1 {
		noun = "session"
	}

	return t.style.Secondary.Render(fmt.Sprintf(
		"%d focus %s until long break · Next: %s",
		n,
		noun,
		t.engine.PredictedNextStageLabel(),
	))
}

func (t *Timer) timerView() string {
	var s strings.Builder

	state := t.engine.State()

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.Render(t.cfg.Stage(state.Stage).Message))
	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(t.engine.FormattedRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.engine.ProgressFraction()))
	s.WriteString("\n\n")
	s.WriteString(t.cycleView())
	s.WriteString(t.helpView())

	return s.String()
}

func (t *Timer) helpView() string {
	if t.form != nil {
		return "\n\n" + t.help.ShortHelpView([]key.Binding{
			defaultKeymap.esc,
		})
	}

	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
		defaultKeymap.focus,
		defaultKeymap.shortBreak,
		defaultKeymap.longBreak,
		defaultKeymap.durations,
		defaultKeymap.quit,
	})
}

func (t *Timer) formView(view string) string {
	if t.form == nil {
		return view
	}

	return view + "\n\n" + t.form.View()
}

func (t *Timer) View() string {
	return t.style.Base.Render(t.formView(t.timerView()))
}
