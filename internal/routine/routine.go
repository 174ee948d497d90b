// Package routine describes interval-training routines: ordered rounds of
// active/rest sets followed by a rest between rounds
package routine

import (
	"strings"

	"github.com/google/uuid"
)

// Set is one active interval followed by one rest interval. Durations are in
// seconds.
type Set struct {
	ActiveDuration int `json:"activeDuration" yaml:"active_duration"`
	RestDuration   int `json:"restDuration"   yaml:"rest_duration"`
}

// Round is a group of sets followed by a rest period before the next round.
type Round struct {
	Sets         []Set `json:"sets"         yaml:"sets"`
	RestDuration int   `json:"restDuration" yaml:"rest_duration"`
}

// Routine is a complete workout.
type Routine struct {
	ID     string  `json:"id"     yaml:"id"`
	Name   string  `json:"name"   yaml:"name"`
	Rounds []Round `json:"rounds" yaml:"rounds"`
}

// NewID generates an identifier for a new routine.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the routine so that later edits to r do not
// leak into the copy.
func (r *Routine) Clone() Routine {
	c := Routine{
		ID:     r.ID,
		Name:   r.Name,
		Rounds: make([]Round, len(r.Rounds)),
	}

	for i, round := range r.Rounds {
		c.Rounds[i] = Round{
			Sets:         append([]Set(nil), round.Sets...),
			RestDuration: round.RestDuration,
		}
	}

	return c
}

// SetCount returns the number of sets across all rounds.
func (r *Routine) SetCount() int {
	var n int

	for i := range r.Rounds {
		n += len(r.Rounds[i].Sets)
	}

	return n
}

// Validate checks the structure a timer needs to run the routine.
func (r *Routine) Validate() error {
	if len(r.Rounds) == 0 {
		return errNoRounds
	}

	for i := range r.Rounds {
		round := r.Rounds[i]

		if len(round.Sets) == 0 {
			return errNoSets.Fmt(i + 1)
		}

		if round.RestDuration < 0 {
			return errNegativeRoundRest.Fmt(i+1, round.RestDuration)
		}

		for j, set := range round.Sets {
			if set.ActiveDuration < 0 {
				return errNegativeDuration.Fmt(
					"active",
					i+1,
					j+1,
					set.ActiveDuration,
				)
			}

			if set.RestDuration < 0 {
				return errNegativeDuration.Fmt(
					"rest",
					i+1,
					j+1,
					set.RestDuration,
				)
			}
		}
	}

	return nil
}

// ValidateForSave performs the checks in Validate and also requires the
// fields a stored routine must have.
func (r *Routine) ValidateForSave() error {
	if strings.TrimSpace(r.ID) == "" {
		return errEmptyID
	}

	if strings.TrimSpace(r.Name) == "" {
		return errEmptyName
	}

	return r.Validate()
}

// RoundTime is the time spent on all the sets of a round, excluding the rest
// that follows the round.
func RoundTime(round Round) int {
	var total int

	for _, set := range round.Sets {
		total += set.ActiveDuration + set.RestDuration
	}

	return total
}

// TotalTime is the sum of every set's active and rest durations and every
// round's rest, including the rest after the final round.
func TotalTime(r *Routine) int {
	var total int

	for _, round := range r.Rounds {
		total += RoundTime(round) + round.RestDuration
	}

	return total
}

// PlannedTime is the time a complete run takes. It differs from TotalTime in
// leaving out the final round's rest, which a timer never enters.
func PlannedTime(r *Routine) int {
	total := TotalTime(r)

	if len(r.Rounds) > 0 {
		total -= r.Rounds[len(r.Rounds)-1].RestDuration
	}

	return total
}
