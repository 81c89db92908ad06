//go:generate mockgen -source=../store/db.go -destination=mock_db_test.go -package=history

// Package history turns engine transitions into stored stage records and
// summarises them for `pomo history`
package history

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/pomo/internal/engine"
	"github.com/ayoisaiah/pomo/internal/store"
)

// Recorder writes one record per finished stage. Every record written by
// the same Recorder shares its run id.
type Recorder struct {
	started time.Time
	db      store.DB
	now     func() time.Time
	logger  *slog.Logger
	mu      sync.Mutex
	runID   uuid.UUID
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithLogger sets the logger used by Observe.
func WithLogger(l *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = l
	}
}

// NewRecorder returns a Recorder for a new program run. The current stage is
// considered started at construction time.
func NewRecorder(db store.DB, opts ...Option) *Recorder {
	r := &Recorder{
		db:     db,
		now:    time.Now,
		logger: slog.Default(),
		runID:  uuid.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.started = r.now()

	return r
}

// RunID identifies the program run.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// Restart marks the current stage as started now. Call it when the stage
// is entered without a transition (select or reset).
func (r *Recorder) Restart() {
	r.mu.Lock()
	r.started = r.now()
	r.mu.Unlock()
}

// Record stores the stage that tr ended.
func (r *Recorder) Record(tr engine.Transition) error {
	r.mu.Lock()

	end := r.now()

	rec := &store.Record{
		ID:             uuid.New(),
		RunID:          r.runID,
		Stage:          tr.From,
		StartedAt:      r.started,
		EndedAt:        end,
		PlannedSeconds: tr.Planned,
		ElapsedSeconds: tr.Elapsed,
		Skipped:        tr.Reason == engine.ReasonSkipped,
	}

	r.started = end

	r.mu.Unlock()

	return r.db.PutRecord(rec)
}

// Observe records tr and logs a failure instead of returning it, so it can
// be registered as an engine.Observer.
func (r *Recorder) Observe(tr engine.Transition) {
	if err := r.Record(tr); err != nil {
		r.logger.Error(
			"saving stage record failed",
			slog.String("stage", string(tr.From)),
			slog.Any("error", err),
		)
	}
}
