package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnmarshalConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration %q: use minutes (25) or a duration (25m)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes, got %d",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions, got %d",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to parse time %q",
	}

	errSinceAfterUntil = &apperr.Error{
		Message: "--since (%s) must be earlier than --until (%s)",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}
)
