package store

import "github.com/ayoisaiah/intervals/internal/apperr"

var (
	// ErrRoutineNotFound is returned when no routine has the requested id.
	ErrRoutineNotFound = &apperr.Error{
		Message: "routine not found: %s",
	}

	errIntervalsRunning = &apperr.Error{
		Message: "is intervals already running? Only one instance can be active at a time",
	}

	errInvalidRoutine = &apperr.Error{
		Message: "cannot save routine %q",
	}
)
