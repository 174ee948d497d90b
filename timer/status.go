package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pterm/pterm"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/intervals/internal/engine"
	"github.com/ayoisaiah/intervals/internal/osutil"
	"github.com/ayoisaiah/intervals/internal/timeutil"
)

// Status represents the status of a running timer.
type Status struct {
	UpdatedAt   time.Time    `json:"updated_at"`
	RoutineName string       `json:"routine_name"`
	Phase       engine.Phase `json:"phase"`
	Round       int          `json:"round"`
	Rounds      int          `json:"rounds"`
	Set         int          `json:"set"`
	Sets        int          `json:"sets"`
	Remaining   int          `json:"remaining"`
	Paused      bool         `json:"paused"`
}

// remaining estimates the seconds left in the phase at time now.
func (s *Status) remaining(now time.Time) int {
	if s.Paused {
		return s.Remaining
	}

	elapsed := int(now.Sub(s.UpdatedAt).Seconds())

	return max(s.Remaining-elapsed, 0)
}

// Line renders the status as a single line.
func (s *Status) Line(now time.Time) string {
	text := fmt.Sprintf(
		"[%s] %s: round %d/%d, set %d/%d: %s",
		s.RoutineName,
		phaseLabel(s.Phase),
		s.Round,
		s.Rounds,
		s.Set,
		s.Sets,
		timeutil.MMSS(s.remaining(now)),
	)

	if s.Paused {
		text += " (paused)"
	}

	return text
}

func (t *Timer) newStatus() Status {
	sets := 0
	if t.state.Round >= 1 && t.state.Round <= len(t.routine.Rounds) {
		sets = len(t.routine.Rounds[t.state.Round-1].Sets)
	}

	return Status{
		UpdatedAt:   t.now(),
		RoutineName: t.routine.Name,
		Phase:       t.state.Phase,
		Round:       t.state.Round,
		Rounds:      len(t.routine.Rounds),
		Set:         t.state.Set,
		Sets:        sets,
		Remaining:   t.state.Remaining,
		Paused:      t.state.Paused,
	}
}

func (t *Timer) writeStatusFile() error {
	if t.statusPath == "" {
		return nil
	}

	b, err := json.Marshal(t.newStatus())
	if err != nil {
		return err
	}

	return os.WriteFile(t.statusPath, b, osutil.FilePermission)
}

func (t *Timer) removeStatusFile() {
	if t.statusPath == "" {
		return
	}

	err := os.Remove(t.statusPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("unable to remove status file", slog.Any("error", err))
	}
}

// ReportStatus prints the status of a timer running in another process. It
// prints nothing if no timer is running.
func ReportStatus(dbFilePath, statusFilePath string, w io.Writer) error {
	db, err := bolt.Open(dbFilePath, osutil.FilePermission, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means intervals is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	pterm.Fprintln(w, s.Line(time.Now()))

	return nil
}
