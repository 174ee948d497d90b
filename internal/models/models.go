package models

import (
	"time"

	"github.com/ayoisaiah/intervals/internal/config"
	"github.com/ayoisaiah/intervals/internal/routine"
)

// BackupVersion is the version of the export format.
const BackupVersion = "1.0.0"

// Run is a record of one attempt at a routine.
type Run struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	RoutineID   string    `json:"routine_id"`
	RoutineName string    `json:"routine_name"`
	// TotalTime is the planned length of the routine in seconds
	TotalTime int  `json:"total_time"`
	Completed bool `json:"completed"`
}

// Duration is the wall-clock length of the run, including pauses.
func (r *Run) Duration() time.Duration {
	if r.EndTime.Before(r.StartTime) {
		return 0
	}

	return r.EndTime.Sub(r.StartTime)
}

// Backup is the export format shared with the mobile app: all routines plus
// the app settings.
type Backup struct {
	Routines   []routine.Routine      `json:"routines"           yaml:"routines"`
	Settings   *config.SettingsConfig `json:"settings,omitempty" yaml:"settings,omitempty"`
	ExportedAt time.Time              `json:"exportedAt"         yaml:"exported_at"`
	Version    string                 `json:"version"            yaml:"version"`
}
