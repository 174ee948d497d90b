package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/report"
)

// confirm asks the user a yes/no question. It returns true without asking
// when skip is set.
func confirm(title string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if isAbort(err) {
		return false, nil
	}

	return ok, err
}

// deleteAction deletes a routine after asking for confirmation.
func deleteAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := findRoutine(db, ctx.Args().First())
	if err != nil {
		return err
	}

	printRoutinesTable(os.Stdout, []routine.Routine{*r})

	ok, err := confirm(
		fmt.Sprintf("The routine %q will be deleted permanently. Proceed?", r.Name),
		ctx.Bool("yes"),
	)
	if err != nil || !ok {
		return err
	}

	if err := db.DeleteRoutine(r.ID); err != nil {
		return err
	}

	report.RoutineDeleted(r.Name)

	return nil
}
