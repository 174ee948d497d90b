package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/routine"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "intervals.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func testRoutine(id, name string) routine.Routine {
	return routine.Routine{
		ID:   id,
		Name: name,
		Rounds: []routine.Round{
			{
				Sets: []routine.Set{
					{ActiveDuration: 20, RestDuration: 10},
					{ActiveDuration: 30, RestDuration: 15},
				},
				RestDuration: 60,
			},
		},
	}
}

func TestRoutineRoundTrip(t *testing.T) {
	c := newTestClient(t)

	want := testRoutine("r1", "Legs")

	if err := c.SaveRoutine(&want); err != nil {
		t.Fatal(err)
	}

	got, err := c.GetRoutine("r1")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("routine mismatch (-want +got):\n%s", diff)
	}

	// saving under the same id overwrites
	want.Name = "Legs day"

	if err := c.SaveRoutine(&want); err != nil {
		t.Fatal(err)
	}

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]routine.Routine{want}, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestGetRoutineNotFound(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetRoutine("missing")
	if !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}
}

func TestSaveRoutineRejectsInvalid(t *testing.T) {
	c := newTestClient(t)

	testCases := []struct {
		name string
		r    routine.Routine
	}{
		{
			name: "missing id",
			r:    testRoutine("", "No id"),
		},
		{
			name: "missing name",
			r:    testRoutine("r1", " "),
		},
		{
			name: "no rounds",
			r:    routine.Routine{ID: "r2", Name: "Empty"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.SaveRoutine(&tc.r)
			if !errors.Is(err, errInvalidRoutine) {
				t.Fatalf("expected errInvalidRoutine, got %v", err)
			}
		})
	}

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if len(list) != 0 {
		t.Fatalf("expected no routines, got %d", len(list))
	}
}

func TestSeedRoutines(t *testing.T) {
	c := newTestClient(t)

	presets := []routine.Routine{
		testRoutine("preset-a", "A"),
		testRoutine("preset-b", "B"),
	}

	seeded, err := c.SeedRoutines(presets)
	if err != nil {
		t.Fatal(err)
	}

	if !seeded {
		t.Fatal("expected an empty store to be seeded")
	}

	seeded, err = c.SeedRoutines([]routine.Routine{testRoutine("preset-c", "C")})
	if err != nil {
		t.Fatal(err)
	}

	if seeded {
		t.Fatal("a store with routines must not be seeded again")
	}

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(presets, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedRoutinesOnlyOnce(t *testing.T) {
	c := newTestClient(t)

	presets := []routine.Routine{testRoutine("preset-a", "A")}

	if _, err := c.SeedRoutines(presets); err != nil {
		t.Fatal(err)
	}

	// the user empties their library
	if err := c.ReplaceRoutines([]routine.Routine{}); err != nil {
		t.Fatal(err)
	}

	seeded, err := c.SeedRoutines(presets)
	if err != nil {
		t.Fatal(err)
	}

	if seeded {
		t.Fatal("presets must not return after the library was emptied")
	}

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if len(list) != 0 {
		t.Fatalf("expected no routines, got %d", len(list))
	}
}

func TestSeedRoutinesKeepsExistingLibrary(t *testing.T) {
	c := newTestClient(t)

	own := testRoutine("own", "Own")
	if err := c.SaveRoutine(&own); err != nil {
		t.Fatal(err)
	}

	seeded, err := c.SeedRoutines([]routine.Routine{testRoutine("preset-a", "A")})
	if err != nil {
		t.Fatal(err)
	}

	if seeded {
		t.Fatal("a store that already has routines must not be seeded")
	}

	if err := c.DeleteRoutine(own.ID); err != nil {
		t.Fatal(err)
	}

	seeded, err = c.SeedRoutines([]routine.Routine{testRoutine("preset-a", "A")})
	if err != nil {
		t.Fatal(err)
	}

	if seeded {
		t.Fatal("deleting the last routine must not bring the presets back")
	}
}

func TestReplaceRoutines(t *testing.T) {
	c := newTestClient(t)

	old := testRoutine("old", "Old")
	if err := c.SaveRoutine(&old); err != nil {
		t.Fatal(err)
	}

	replacement := []routine.Routine{
		testRoutine("a", "First"),
		testRoutine("b", "Second"),
	}

	if err := c.ReplaceRoutines(replacement); err != nil {
		t.Fatal(err)
	}

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(replacement, list); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	// an invalid routine leaves the store untouched
	bad := append(replacement, routine.Routine{ID: "c"})

	if err := c.ReplaceRoutines(bad); !errors.Is(err, errInvalidRoutine) {
		t.Fatalf("expected errInvalidRoutine, got %v", err)
	}

	list, err = c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 routines, got %d", len(list))
	}
}

func TestDeleteRoutine(t *testing.T) {
	c := newTestClient(t)

	r := testRoutine("r1", "Arms")
	if err := c.SaveRoutine(&r); err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteRoutine("r1"); err != nil {
		t.Fatal(err)
	}

	if _, err := c.GetRoutine("r1"); !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}

	if err := c.DeleteRoutine("r1"); !errors.Is(err, ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound, got %v", err)
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func TestGetRuns(t *testing.T) {
	c := newTestClient(t)

	runs := []models.Run{
		{
			StartTime:   at(10, 0),
			EndTime:     at(10, 20),
			RoutineID:   "r1",
			RoutineName: "Tabata",
			TotalTime:   1200,
			Completed:   true,
		},
		{
			StartTime:   at(11, 0),
			EndTime:     at(11, 30),
			RoutineID:   "r2",
			RoutineName: "Classic HIIT",
			TotalTime:   1800,
			Completed:   true,
		},
		{
			StartTime:   at(12, 0),
			EndTime:     at(12, 10),
			RoutineID:   "r1",
			RoutineName: "Tabata",
			TotalTime:   1200,
		},
	}

	for i := range runs {
		if err := c.SaveRun(&runs[i]); err != nil {
			t.Fatal(err)
		}
	}

	testCases := []struct {
		name  string
		since time.Time
		until time.Time
		want  []models.Run
	}{
		{
			name:  "everything",
			since: at(0, 0),
			until: at(23, 0),
			want:  runs,
		},
		{
			name:  "includes a run that ends inside the range",
			since: at(11, 10),
			until: at(12, 30),
			want:  runs[1:],
		},
		{
			name:  "excludes a run that ended before the range",
			since: at(10, 30),
			until: at(11, 5),
			want:  runs[1:2],
		},
		{
			name:  "after the last run",
			since: at(13, 0),
			until: at(14, 0),
			want:  []models.Run{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.GetRuns(tc.since, tc.until)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("runs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "intervals.db")

	legacy := []routine.Routine{
		testRoutine("keep", "Keep"),
		testRoutine("", "Anonymous"),
	}

	run := models.Run{
		StartTime: at(9, 0),
		EndTime:   at(9, 10),
		RoutineID: "keep",
		Completed: true,
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		routines, err := tx.CreateBucket([]byte(routineBucket))
		if err != nil {
			return err
		}

		v, err := json.Marshal(legacy)
		if err != nil {
			return err
		}

		if err := routines.Put([]byte(legacyRoutinesKey), v); err != nil {
			return err
		}

		runs, err := tx.CreateBucket([]byte(runBucket))
		if err != nil {
			return err
		}

		v, err = json.Marshal(&run)
		if err != nil {
			return err
		}

		return runs.Put([]byte(run.StartTime.Format(time.RFC3339)), v)
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	defer c.Close()

	list, err := c.ListRoutines()
	if err != nil {
		t.Fatal(err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 migrated routines, got %d", len(list))
	}

	if _, err := c.GetRoutine("keep"); err != nil {
		t.Fatal(err)
	}

	for _, r := range list {
		if r.ID == "" {
			t.Fatalf("routine %q was not given an id", r.Name)
		}
	}

	got, err := c.GetRuns(at(8, 0), at(10, 0))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]models.Run{run}, got); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestSecondClientIsLockedOut(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "intervals.db")

	c, err := NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	defer c.Close()

	_, err = NewClient(dbPath)
	if !errors.Is(err, errIntervalsRunning) {
		t.Fatalf("expected errIntervalsRunning, got %v", err)
	}
}

func TestReopen(t *testing.T) {
	c := newTestClient(t)

	r := testRoutine("r1", "Core")
	if err := c.SaveRoutine(&r); err != nil {
		t.Fatal(err)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	if err := c.Open(); err != nil {
		t.Fatal(err)
	}

	if _, err := c.GetRoutine("r1"); err != nil {
		t.Fatal(err)
	}
}
