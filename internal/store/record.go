package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/pomo/internal/stage"
)

// Record is a finished stage: completed by the countdown or skipped.
type Record struct {
	StartedAt      time.Time  `json:"started_at"      yaml:"started_at"`
	EndedAt        time.Time  `json:"ended_at"        yaml:"ended_at"`
	Stage          stage.Kind `json:"stage"           yaml:"stage"`
	ID             uuid.UUID  `json:"id"              yaml:"id"`
	RunID          uuid.UUID  `json:"run_id"          yaml:"run_id"`
	PlannedSeconds int        `json:"planned_seconds" yaml:"planned_seconds"`
	ElapsedSeconds int        `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Skipped        bool       `json:"skipped"         yaml:"skipped"`
}

// Completed reports whether the stage ran its full length.
func (r *Record) Completed() bool {
	return !r.Skipped
}

// Elapsed returns the counted down time.
func (r *Record) Elapsed() time.Duration {
	return time.Duration(r.ElapsedSeconds) * time.Second
}
