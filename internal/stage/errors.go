package stage

import "github.com/ayoisaiah/pomo/internal/apperr"

// ErrUnknownStage is returned when a stage name cannot be resolved.
var ErrUnknownStage = &apperr.Error{
	Message: "unknown stage: %q (expected focus, short_break or long_break)",
}
