package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the generation of the clock that scheduled it.
type tickMsg struct {
	time time.Time
	id   int
}

// clock schedules one tea.Tick at a time. Every start or stop bumps the
// generation, so a tick that was already in flight when the clock stopped
// or restarted is recognised as stale and dropped.
type clock struct {
	interval time.Duration
	id       int
	running  bool
}

func newClock(interval time.Duration) clock {
	return clock{interval: interval}
}

func (c *clock) start() tea.Cmd {
	c.id++
	c.running = true

	return c.tick()
}

func (c *clock) stop() {
	c.id++
	c.running = false
}

// sync starts or stops the clock to match running.
func (c *clock) sync(running bool) tea.Cmd {
	switch {
	case running && !c.running:
		return c.start()
	case !running && c.running:
		c.stop()
	}

	return nil
}

// accept reports whether msg belongs to the current generation.
func (c *clock) accept(msg tickMsg) bool {
	return c.running && msg.id == c.id
}

func (c *clock) tick() tea.Cmd {
	id := c.id

	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, time: t}
	})
}
