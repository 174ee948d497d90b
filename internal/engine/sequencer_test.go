package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/intervals/internal/routine"
)

func sequencerRoutine() *routine.Routine {
	return &routine.Routine{
		Rounds: []routine.Round{
			{
				Sets: []routine.Set{
					{ActiveDuration: 30, RestDuration: 10},
					{ActiveDuration: 40, RestDuration: 15},
				},
				RestDuration: 60,
			},
			{
				Sets: []routine.Set{
					{ActiveDuration: 20, RestDuration: 5},
				},
				RestDuration: 90,
			},
		},
	}
}

func TestNext(t *testing.T) {
	running := func(phase Phase, round, set, remaining int) State {
		return State{
			Phase:     phase,
			Round:     round,
			Set:       set,
			Remaining: remaining,
			Running:   true,
		}
	}

	testCases := []struct {
		name      string
		in        State
		want      State
		completed bool
	}{
		{
			name: "active enters the rest of the same set",
			in:   running(PhaseActive, 1, 1, 0),
			want: running(PhaseRest, 1, 1, 10),
		},
		{
			name: "rest moves to the next set",
			in:   running(PhaseRest, 1, 1, 0),
			want: running(PhaseActive, 1, 2, 40),
		},
		{
			name: "rest after last set enters round rest",
			in:   running(PhaseRest, 1, 2, 0),
			want: running(PhaseRoundRest, 1, 2, 60),
		},
		{
			name: "round rest starts the next round",
			in:   running(PhaseRoundRest, 1, 2, 0),
			want: running(PhaseActive, 2, 1, 20),
		},
		{
			name: "single set round goes from active to its rest",
			in:   running(PhaseActive, 2, 1, 0),
			want: running(PhaseRest, 2, 1, 5),
		},
		{
			name:      "rest after last set of last round completes",
			in:        running(PhaseRest, 2, 1, 0),
			want:      State{Phase: PhaseActive, Round: 2, Set: 1},
			completed: true,
		},
		{
			name:      "out of range position completes",
			in:        running(PhaseActive, 3, 1, 0),
			want:      State{Phase: PhaseActive, Round: 3, Set: 1},
			completed: true,
		},
		{
			name:      "round rest after the final round completes",
			in:        running(PhaseRoundRest, 2, 1, 0),
			want:      State{Phase: PhaseActive, Round: 2, Set: 1},
			completed: true,
		},
		{
			name: "countdown is left untouched",
			in:   running(PhaseCountdown, 1, 1, 0),
			want: running(PhaseCountdown, 1, 1, 0),
		},
	}

	r := sequencerRoutine()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, completed := Next(r, tc.in)

			if completed != tc.completed {
				t.Fatalf("expected completed=%t, got %t", tc.completed, completed)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected state (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNextKeepsTotal(t *testing.T) {
	s := State{Phase: PhaseActive, Round: 1, Set: 1, Total: 270, Running: true}

	got, _ := Next(sequencerRoutine(), s)
	if got.Total != 270 {
		t.Fatalf("total changed to %d", got.Total)
	}
}

func TestAdvance(t *testing.T) {
	r := &routine.Routine{
		Rounds: []routine.Round{
			{Sets: []routine.Set{{ActiveDuration: 0, RestDuration: 0}}},
			{Sets: []routine.Set{{ActiveDuration: 0, RestDuration: 4}}},
		},
	}

	start := State{Phase: PhaseActive, Round: 1, Set: 1, Running: true}

	got, completed := Advance(r, start)
	if completed {
		t.Fatal("routine should not be complete yet")
	}

	want := State{Phase: PhaseRest, Round: 2, Set: 1, Remaining: 4, Running: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected state (-want +got):\n%s", diff)
	}

	// a state with time remaining is returned as is
	if again, _ := Advance(r, got); again != got {
		t.Fatalf("expected no change, got %+v", again)
	}

	got.Remaining = 0

	_, completed = Advance(r, got)
	if !completed {
		t.Fatal("expected routine to complete")
	}
}
