package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/report"
)

// intField is the text typed into a numeric form field.
type intField struct {
	title string
	value string
	least int
}

func (f *intField) validate(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%s must be a whole number", strings.ToLower(f.title))
	}

	if n < f.least {
		return fmt.Errorf("%s must be at least %d", strings.ToLower(f.title), f.least)
	}

	return nil
}

func (f *intField) number() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.value))
	return n
}

func (f *intField) input() *huh.Input {
	return huh.NewInput().
		Title(f.title).
		Value(&f.value).
		Validate(f.validate)
}

// routineForm collects the values for routine.Build.
type routineForm struct {
	name         string
	rounds       intField
	setsPerRound intField
	active       intField
	setRest      intField
	roundRest    intField
}

func newRoutineForm() *routineForm {
	return &routineForm{
		rounds:       intField{title: "Rounds", value: "3", least: 1},
		setsPerRound: intField{title: "Sets per round", value: "8", least: 1},
		active:       intField{title: "Work seconds per set", value: "20", least: 0},
		setRest:      intField{title: "Rest seconds per set", value: "10", least: 0},
		roundRest:    intField{title: "Rest seconds between rounds", value: "60", least: 0},
	}
}

func (f *routineForm) spec() routine.Spec {
	return routine.Spec{
		Name:           f.name,
		Rounds:         f.rounds.number(),
		SetsPerRound:   f.setsPerRound.number(),
		ActiveDuration: f.active.number(),
		SetRest:        f.setRest.number(),
		RoundRest:      f.roundRest.number(),
	}
}

func (f *routineForm) run() error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}

					return nil
				}),
			f.rounds.input(),
			f.setsPerRound.input(),
		),
		huh.NewGroup(
			f.active.input(),
			f.setRest.input(),
			f.roundRest.input(),
		),
	)

	return form.Run()
}

// newAction builds a routine from an interactive form and saves it.
func newAction(_ *cli.Context) error {
	f := newRoutineForm()

	err := f.run()
	if isAbort(err) {
		return nil
	}

	if err != nil {
		return err
	}

	r, err := routine.Build(f.spec())
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	if err := db.SaveRoutine(r); err != nil {
		return err
	}

	report.RoutineSaved(r.Name)

	return nil
}
