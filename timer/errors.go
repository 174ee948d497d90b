package timer

import "github.com/ayoisaiah/intervals/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse cmd option",
	}

	errSaveRun = &apperr.Error{
		Message: "unable to save run history",
	}
)
