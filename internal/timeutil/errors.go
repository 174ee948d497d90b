package timeutil

import "github.com/ayoisaiah/intervals/internal/apperr"

var (
	errEmptyDate = &apperr.Error{
		Message: "date cannot be empty",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
)
