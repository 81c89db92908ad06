package store

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errPomoRunning = &apperr.Error{
		Message: "is pomo already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the history database",
	}

	errCorruptRecord = &apperr.Error{
		Message: "corrupt history record %s",
	}

	errMissingEndTime = &apperr.Error{
		Message: "history record %s has no end time",
	}
)
