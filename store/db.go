package store

import (
	"time"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/routine"
)

// DB is the database storage interface.
type DB interface {
	// GetRoutine returns the routine with the given id or ErrRoutineNotFound
	GetRoutine(id string) (*routine.Routine, error)
	// ListRoutines returns every saved routine
	ListRoutines() ([]routine.Routine, error)
	// SaveRoutine creates a routine, or overwrites the one with the same id
	SaveRoutine(r *routine.Routine) error
	// ReplaceRoutines swaps all saved routines for the given ones
	ReplaceRoutines(routines []routine.Routine) error
	// DeleteRoutine deletes a saved routine
	DeleteRoutine(id string) error
	// SeedRoutines saves the given routines only if no routine exists yet. It
	// reports whether anything was saved.
	SeedRoutines(routines []routine.Routine) (bool, error)
	// SaveRun records a finished or abandoned run
	SaveRun(run *models.Run) error
	// GetRuns returns the runs that overlap the time range, oldest first
	GetRuns(since, until time.Time) ([]models.Run, error)
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
