package routine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tabata() *Routine {
	sets := make([]Set, 8)
	for i := range sets {
		sets[i] = Set{ActiveDuration: 20, RestDuration: 10}
	}

	return &Routine{
		ID:   "preset-tabata",
		Name: "Tabata",
		Rounds: []Round{
			{Sets: sets, RestDuration: 60},
			{Sets: append([]Set(nil), sets...), RestDuration: 60},
		},
	}
}

func TestTotalTime(t *testing.T) {
	testCases := []struct {
		name    string
		routine *Routine
		total   int
		planned int
	}{
		{
			name:    "tabata",
			routine: tabata(),
			total:   2*(8*30) + 2*60,
			planned: 2*(8*30) + 60,
		},
		{
			name: "single round single set",
			routine: &Routine{
				Rounds: []Round{
					{Sets: []Set{{ActiveDuration: 2, RestDuration: 1}}, RestDuration: 5},
				},
			},
			total:   8,
			planned: 3,
		},
		{
			name: "uneven rounds",
			routine: &Routine{
				Rounds: []Round{
					{
						Sets: []Set{
							{ActiveDuration: 45, RestDuration: 15},
							{ActiveDuration: 30, RestDuration: 0},
						},
						RestDuration: 90,
					},
					{Sets: []Set{{ActiveDuration: 60, RestDuration: 30}}, RestDuration: 0},
				},
			},
			total:   45 + 15 + 30 + 90 + 60 + 30,
			planned: 45 + 15 + 30 + 90 + 60 + 30,
		},
		{
			name:    "no rounds",
			routine: &Routine{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalTime(tc.routine); got != tc.total {
				t.Errorf("TotalTime: expected %d, got %d", tc.total, got)
			}

			if got := PlannedTime(tc.routine); got != tc.planned {
				t.Errorf("PlannedTime: expected %d, got %d", tc.planned, got)
			}
		})
	}
}

func TestRoundTime(t *testing.T) {
	r := tabata()

	if got := RoundTime(r.Rounds[0]); got != 240 {
		t.Fatalf("expected 240, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		routine *Routine
		want    error
		name    string
	}{
		{name: "valid", routine: tabata()},
		{name: "no rounds", routine: &Routine{}, want: errNoRounds},
		{
			name:    "empty round",
			routine: &Routine{Rounds: []Round{{RestDuration: 10}}},
			want:    errNoSets,
		},
		{
			name: "negative active",
			routine: &Routine{Rounds: []Round{
				{Sets: []Set{{ActiveDuration: -1}}},
			}},
			want: errNegativeDuration,
		},
		{
			name: "negative set rest",
			routine: &Routine{Rounds: []Round{
				{Sets: []Set{{ActiveDuration: 5, RestDuration: -3}}},
			}},
			want: errNegativeDuration,
		},
		{
			name: "negative round rest",
			routine: &Routine{Rounds: []Round{
				{Sets: []Set{{ActiveDuration: 5}}, RestDuration: -10},
			}},
			want: errNegativeRoundRest,
		},
		{
			name: "zero durations are legal",
			routine: &Routine{Rounds: []Round{
				{Sets: []Set{{}}},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.routine.Validate()

			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				return
			}

			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateForSave(t *testing.T) {
	r := tabata()
	r.Name = "  "

	if err := r.ValidateForSave(); !errors.Is(err, errEmptyName) {
		t.Fatalf("expected empty name error, got %v", err)
	}

	r.ID = ""
	if err := r.ValidateForSave(); !errors.Is(err, errEmptyID) {
		t.Fatalf("expected empty id error, got %v", err)
	}
}

func TestClone(t *testing.T) {
	r := tabata()
	c := r.Clone()

	if diff := cmp.Diff(*r, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	r.Rounds[0].Sets[0].ActiveDuration = 999
	r.Rounds[1].RestDuration = 0

	if c.Rounds[0].Sets[0].ActiveDuration != 20 {
		t.Fatal("clone shares set storage with the original")
	}

	if c.Rounds[1].RestDuration != 60 {
		t.Fatal("clone shares round storage with the original")
	}
}

func TestBuild(t *testing.T) {
	r, err := Build(Spec{
		Name:           " Ladder ",
		Rounds:         3,
		SetsPerRound:   4,
		ActiveDuration: 40,
		SetRest:        20,
		RoundRest:      60,
	})
	if err != nil {
		t.Fatal(err)
	}

	if r.ID == "" {
		t.Fatal("expected an id to be generated")
	}

	if r.Name != "Ladder" {
		t.Fatalf("expected trimmed name, got %q", r.Name)
	}

	if got := r.SetCount(); got != 12 {
		t.Fatalf("expected 12 sets, got %d", got)
	}

	if got := TotalTime(r); got != 3*(4*60+60) {
		t.Fatalf("unexpected total time: %d", got)
	}

	_, err = Build(Spec{Name: "x", Rounds: 0, SetsPerRound: 1})
	if !errors.Is(err, errNoRounds) {
		t.Fatalf("expected no rounds error, got %v", err)
	}

	_, err = Build(Spec{Name: "", Rounds: 1, SetsPerRound: 1})
	if !errors.Is(err, errEmptyName) {
		t.Fatalf("expected empty name error, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	routines := []Routine{
		{ID: "a1", Name: "Tabata"},
		{ID: "b2", Name: "Quick HIIT"},
	}

	if r, ok := Lookup(routines, "b2"); !ok || r.Name != "Quick HIIT" {
		t.Fatalf("lookup by id failed: %v %v", r, ok)
	}

	if r, ok := Lookup(routines, "tabata"); !ok || r.ID != "a1" {
		t.Fatalf("lookup by name failed: %v %v", r, ok)
	}

	if _, ok := Lookup(routines, "missing"); ok {
		t.Fatal("expected lookup to fail")
	}
}
