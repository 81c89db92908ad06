package console

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/stage"
	"github.com/ayoisaiah/pomo/internal/ticker"
)

const helpText = `commands:
  p, <enter>          start or pause the timer
  s                   skip to the next stage
  r                   reset the session
  1, 2, 3             select focus, short break or long break
  set <stage> <mins>  change a stage duration (e.g. "set 1 50")
  q                   quit`

// Session drives an engine from line commands and prints every change.
type Session struct {
	engine    *engine.Engine
	source    *ticker.Source
	printer   *Printer
	onEnter   func()
	tickOpts  []ticker.Option
	autoStart bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithAutoStart starts the countdown as soon as Run is called.
func WithAutoStart() SessionOption {
	return func(s *Session) {
		s.autoStart = true
	}
}

// WithTickerOptions passes opts to the underlying tick source.
func WithTickerOptions(opts ...ticker.Option) SessionOption {
	return func(s *Session) {
		s.tickOpts = append(s.tickOpts, opts...)
	}
}

// OnStageEntered registers fn to be called when a stage is entered by a
// select or a reset rather than a transition.
func OnStageEntered(fn func()) SessionOption {
	return func(s *Session) {
		s.onEnter = fn
	}
}

// NewSession wires e to p: transitions and ticks are printed as they
// happen.
func NewSession(e *engine.Engine, p *Printer, opts ...SessionOption) *Session {
	s := &Session{
		engine:  e,
		printer: p,
	}

	for _, opt := range opts {
		opt(s)
	}

	tickOpts := append([]ticker.Option{ticker.OnTick(p.Tick)}, s.tickOpts...)

	s.source = ticker.New(e, tickOpts...)

	e.Observe(p.Transition)

	return s
}

// Run reads commands from in until "q" is entered or ctx is done. When in
// reaches EOF the timer keeps going until ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	defer s.source.Stop()

	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		sc := bufio.NewScanner(in)

		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}

		errc <- sc.Err()
	}()

	if s.autoStart && !s.engine.Running() {
		s.engine.ToggleRunning()
		s.source.Sync()
	}

	s.printer.Status()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if err != nil {
				return err
			}

			errc = nil
		case line := <-lines:
			if s.Exec(line) {
				return nil
			}
		}
	}
}

// Exec applies a single command line and reports whether the user asked to
// quit.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(strings.ToLower(line))

	var cmd string
	if len(fields) > 0 {
		cmd = fields[0]
	}

	switch cmd {
	case "q", "quit", "exit":
		return true
	case "", "p", "pause", "start":
		s.engine.ToggleRunning()
	case "s", "skip":
		s.engine.Skip()
	case "r", "reset":
		s.engine.Reset()
		s.entered()
	case "?", "h", "help":
		s.printer.Message(helpText)
		return false
	case "set":
		if len(fields) != 3 {
			s.printer.Message("usage: set <stage> <minutes>")
			return false
		}

		k, err := stage.Parse(fields[1])
		if err == nil {
			err = s.engine.SetDuration(k, fields[2])
		}

		if err != nil {
			s.printer.Message("%s", err)
			return false
		}
	default:
		k, err := stage.Parse(cmd)
		if err != nil {
			s.printer.Message("unknown command %q (type ? for help)", cmd)
			return false
		}

		_ = s.engine.SelectStage(k)
		s.entered()
	}

	s.source.Sync()
	s.printer.Status()

	return false
}

func (s *Session) entered() {
	if s.onEnter != nil {
		s.onEnter()
	}
}
