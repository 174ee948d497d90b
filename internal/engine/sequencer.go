package engine

import "github.com/ayoisaiah/intervals/internal/routine"

// Next computes the state that follows s once its phase has run out. The
// duration loaded into Remaining belongs to the phase being entered. The
// second return value reports whether the routine has finished, in which case
// the returned state is no longer running and its phase is reset to active.
func Next(r *routine.Routine, s State) (State, bool) {
	if !inBounds(r, s) {
		return finish(s), true
	}

	round := r.Rounds[s.Round-1]
	next := s

	switch s.Phase {
	case PhaseActive:
		next.Phase = PhaseRest
		next.Remaining = round.Sets[s.Set-1].RestDuration

	case PhaseRest:
		if s.Set < len(round.Sets) {
			next.Set = s.Set + 1
			next.Phase = PhaseActive
			next.Remaining = round.Sets[s.Set].ActiveDuration

			break
		}

		if s.Round < len(r.Rounds) {
			next.Phase = PhaseRoundRest
			next.Remaining = round.RestDuration

			break
		}

		return finish(s), true

	case PhaseRoundRest:
		if s.Round >= len(r.Rounds) {
			return finish(s), true
		}

		next.Round = s.Round + 1
		next.Set = 1
		next.Phase = PhaseActive
		next.Remaining = r.Rounds[s.Round].Sets[0].ActiveDuration

	case PhaseCountdown:
		// reserved: no transition is defined out of the countdown phase
	}

	return next, false
}

// Advance applies Next until the state has time remaining or the routine is
// complete, so that zero-length phases are passed through at once instead of
// costing a tick each.
func Advance(r *routine.Routine, s State) (State, bool) {
	for s.Remaining <= 0 {
		if s.Phase == PhaseCountdown {
			return s, false
		}

		var done bool

		s, done = Next(r, s)
		if done {
			return s, true
		}
	}

	return s, false
}

func finish(s State) State {
	s.Running = false
	s.Paused = false
	s.Phase = PhaseActive
	s.Remaining = 0

	return s
}

func inBounds(r *routine.Routine, s State) bool {
	if s.Round < 1 || s.Round > len(r.Rounds) {
		return false
	}

	round := r.Rounds[s.Round-1]

	if s.Set < 1 || s.Set > len(round.Sets) {
		return false
	}

	if s.Phase == PhaseRoundRest && s.Round < len(r.Rounds) &&
		len(r.Rounds[s.Round].Sets) == 0 {
		return false
	}

	return true
}
