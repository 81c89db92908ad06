// Package ticker drives an engine once per interval from a background
// goroutine. Starting and stopping follow the engine's running state, and
// Stop does not return until the goroutine has exited, so no tick is ever
// delivered after a stop.
package ticker

import (
	"sync"
	"time"

	"github.com/ayoisaiah/pomo/internal/engine"
)

// DefaultInterval is the tick period.
const DefaultInterval = time.Second

// Tickable is the part of the engine a Source drives.
type Tickable interface {
	Tick() engine.TickResult
	Running() bool
}

// Clock creates the periodic channel a Source waits on. The returned func
// releases it.
type Clock interface {
	NewTicker(d time.Duration) (<-chan time.Time, func())
}

// RealClock is a Clock backed by time.Ticker.
type RealClock struct{}

func (RealClock) NewTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Option configures a Source.
type Option func(*Source)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(s *Source) {
		s.clock = c
	}
}

// WithInterval changes the tick period.
func WithInterval(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.interval = d
		}
	}
}

// OnTick registers fn to receive the result of every tick. fn runs on the
// source's goroutine and must not call Start, Stop or Sync.
func OnTick(fn func(engine.TickResult)) Option {
	return func(s *Source) {
		s.onTick = fn
	}
}

// Source calls Tick on its target once per interval while active.
type Source struct {
	target   Tickable
	clock    Clock
	onTick   func(engine.TickResult)
	stop     chan struct{}
	done     chan struct{}
	interval time.Duration
	mu       sync.Mutex
}

// New returns an inactive source for target.
func New(target Tickable, opts ...Option) *Source {
	s := &Source{
		target:   target,
		clock:    RealClock{},
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins ticking. It is a no-op if the source is already active.
func (s *Source) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeLocked() {
		return
	}

	c, release := s.clock.NewTicker(s.interval)

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(c, release, s.stop, s.done)
}

// Stop halts ticking and waits for the goroutine to exit.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop == nil {
		return
	}

	close(s.stop)
	<-s.done

	s.stop = nil
	s.done = nil
}

// Sync starts or stops the source to match the target's running state.
// Call it after every command that may change that state.
func (s *Source) Sync() {
	if s.target.Running() {
		s.Start()
		return
	}

	s.Stop()
}

// Active reports whether the ticking goroutine is alive.
func (s *Source) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeLocked()
}

func (s *Source) activeLocked() bool {
	if s.done == nil {
		return false
	}

	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Source) run(
	c <-chan time.Time,
	release func(),
	stop, done chan struct{},
) {
	defer close(done)
	defer release()

	for {
		select {
		case <-stop:
			return
		case <-c:
			// the target was paused without a Stop; nothing more to do
			if !s.target.Running() {
				return
			}

			res := s.target.Tick()

			if s.onTick != nil {
				s.onTick(res)
			}
		}
	}
}
