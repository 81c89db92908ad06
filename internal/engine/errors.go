package engine

import "github.com/ayoisaiah/pomo/internal/apperr"

// ErrInvalidDuration is returned by SetDuration when the value is not a
// number. The engine state is left unchanged.
var ErrInvalidDuration = &apperr.Error{
	Message: "invalid duration %q: expected a number of minutes",
}
