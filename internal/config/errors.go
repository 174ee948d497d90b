package config

import "github.com/ayoisaiah/intervals/internal/apperr"

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
		Message: "writing config file failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidVolume = &apperr.Error{
		Message: "volume must be between %d and %d, got %d",
	}

	errInvalidCountdown = &apperr.Error{
		Message: "countdown duration must be between %d and %d seconds, got %d",
	}
)
