// Package console renders the timer as plain lines for headless use
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/ui"
)

// Status is the read side of the engine the printer needs.
type Status interface {
	State() engine.State
	FormattedRemaining() string
	ProgressFraction() float64
	PredictedNextStageLabel() string
	LongBreakInterval() int
}

// Printer writes one line per status update or transition. It is safe for
// concurrent use.
type Printer struct {
	w      io.Writer
	status Status
	mu     sync.Mutex
}

// NewPrinter returns a Printer reading from status and writing to w.
func NewPrinter(w io.Writer, status Status) *Printer {
	return &Printer{
		w:      w,
		status: status,
	}
}

// Status writes the current stage, remaining time, progress and the
// predicted next stage, e.g. "[Focus 1/4] 24:59 (0%) next: Short break".
func (p *Printer) Status() {
	s := p.status.State()

	line := fmt.Sprintf(
		"%s %s (%d%%) next: %s",
		ui.Stage(s.Stage, "["+p.stageTag(s)+"]"),
		p.status.FormattedRemaining(),
		int(p.status.ProgressFraction()*100),
		p.status.PredictedNextStageLabel(),
	)

	if !s.Running {
		line += " [paused]"
	}

	p.println(line)
}

// Tick prints the status after a tick. It has the signature of
// ticker.OnTick.
func (p *Printer) Tick(_ engine.TickResult) {
	p.Status()
}

// Transition writes "Focus finished -> Short break" or, for a skipped
// stage, "Focus skipped -> Short break". It can be registered as an
// engine.Observer.
func (p *Printer) Transition(tr engine.Transition) {
	verb := "finished"
	if tr.Reason == engine.ReasonSkipped {
		verb = "skipped"
	}

	p.println(fmt.Sprintf(
		"%s %s -> %s",
		tr.From.Label(),
		verb,
		ui.Stage(tr.To, tr.To.Label()),
	))
}

// Message writes a free-form line.
func (p *Printer) Message(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

// stageTag is the stage label, with the position in the cycle for focus
// stages.
func (p *Printer) stageTag(s engine.State) string {
	if s.Stage != stage.Focus {
		return s.Stage.Label()
	}

	interval := p.status.LongBreakInterval()

	return fmt.Sprintf(
		"%s %d/%d",
		s.Stage.Label(),
		s.CompletedFocusCount%interval+1,
		interval,
	)
}

func (p *Printer) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w, line)
}
