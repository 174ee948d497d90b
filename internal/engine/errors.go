package engine

import "github.com/ayoisaiah/intervals/internal/apperr"

// ErrMalformedRoutine is returned by Start when the routine cannot be run.
var ErrMalformedRoutine = &apperr.Error{
	Message: "cannot start a malformed routine",
}
