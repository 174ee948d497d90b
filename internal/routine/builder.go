package routine

import "strings"

// Spec holds the answers to the routine builder. Every round gets the same
// number of identical sets.
type Spec struct {
	Name           string
	Rounds         int
	SetsPerRound   int
	ActiveDuration int
	SetRest        int
	RoundRest      int
}

// Build turns a builder spec into a new routine with a fresh id. The result
// is validated before it is returned.
func Build(s Spec) (*Routine, error) {
	if s.Rounds < 1 {
		return nil, errNoRounds
	}

	if s.SetsPerRound < 1 {
		return nil, errNoSets.Fmt(1)
	}

	r := &Routine{
		ID:     NewID(),
		Name:   strings.TrimSpace(s.Name),
		Rounds: make([]Round, s.Rounds),
	}

	for i := range r.Rounds {
		sets := make([]Set, s.SetsPerRound)

		for j := range sets {
			sets[j] = Set{
				ActiveDuration: s.ActiveDuration,
				RestDuration:   s.SetRest,
			}
		}

		r.Rounds[i] = Round{
			Sets:         sets,
			RestDuration: s.RoundRest,
		}
	}

	if err := r.ValidateForSave(); err != nil {
		return nil, err
	}

	return r, nil
}

// Lookup finds a routine by id, or failing that by case-insensitive name.
func Lookup(routines []Routine, ref string) (*Routine, bool) {
	ref = strings.TrimSpace(ref)

	for i := range routines {
		if routines[i].ID == ref {
			return &routines[i], true
		}
	}

	for i := range routines {
		if strings.EqualFold(routines[i].Name, ref) {
			return &routines[i], true
		}
	}

	return nil, false
}
