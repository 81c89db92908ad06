package store

import "time"

// DB is the database storage interface.
type DB interface {
	// PutRecord saves a finished stage. A record with the same end time is
	// overwritten.
	PutRecord(r *Record) error
	// Records returns the stages that ended within [since, until], oldest
	// first.
	Records(since, until time.Time) ([]Record, error)
	// DeleteRecords deletes one or more saved records
	DeleteRecords(records []Record) error
	// Close ends the database connection
	Close() error
}
