package routine

import "github.com/ayoisaiah/intervals/internal/apperr"

var (
	errNoRounds = &apperr.Error{
		Message: "a routine must have at least one round",
	}

	errNoSets = &apperr.Error{
		Message: "round %d must have at least one set",
	}

	errNegativeRoundRest = &apperr.Error{
		Message: "round %d rest duration cannot be negative (got %d)",
	}

	errNegativeDuration = &apperr.Error{
		Message: "%s duration of round %d, set %d cannot be negative (got %d)",
	}

	errEmptyName = &apperr.Error{
		Message: "routine name cannot be empty",
	}

	errEmptyID = &apperr.Error{
		Message: "routine id cannot be empty",
	}
)
