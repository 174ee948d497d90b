package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/intervals/internal/routine"
	"github.com/ayoisaiah/intervals/internal/timeutil"
	"github.com/ayoisaiah/intervals/internal/ui"
	"github.com/ayoisaiah/intervals/report"
)

const noRoutinesMsg = "No routines found. Create one with 'intervals new'"

// sortRoutines orders routines by name so that "Set 2" comes before
// "Set 10".
func sortRoutines(routines []routine.Routine) {
	slices.SortStableFunc(routines, func(a, b routine.Routine) int {
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)

		switch {
		case natural.Less(an, bn):
			return -1
		case natural.Less(bn, an):
			return 1
		default:
			return 0
		}
	})
}

// routineDuration is the time a routine takes from the first set to the
// end of the final set.
func routineDuration(r *routine.Routine) string {
	return timeutil.HumanDuration(routine.PlannedTime(r))
}

// printRoutinesTable prints a routine table to the command-line.
func printRoutinesTable(w io.Writer, routines []routine.Routine) {
	tableBody := make([][]string, len(routines))

	for i := range routines {
		r := &routines[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			r.ID,
			ui.Green(r.Name),
			fmt.Sprintf("%d", len(r.Rounds)),
			fmt.Sprintf("%d", r.SetCount()),
			routineDuration(r),
		}
	}

	ui.PrintTable(
		w,
		[]string{"#", "ID", "NAME", "ROUNDS", "SETS", "DURATION"},
		tableBody,
	)
}

// printRoundsTable prints every set of a routine with its durations.
func printRoundsTable(w io.Writer, r *routine.Routine) {
	var tableBody [][]string

	for i, round := range r.Rounds {
		for j, set := range round.Sets {
			tableBody = append(tableBody, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", j+1),
				ui.Green(timeutil.MMSS(set.ActiveDuration)),
				ui.Cyan(timeutil.MMSS(set.RestDuration)),
			})
		}

		if i < len(r.Rounds)-1 && round.RestDuration > 0 {
			tableBody = append(tableBody, []string{
				fmt.Sprintf("%d", i+1),
				"",
				"",
				ui.Magenta(timeutil.MMSS(round.RestDuration) + " round rest"),
			})
		}
	}

	ui.PrintTable(
		w,
		[]string{"ROUND", "SET", "WORK", "REST"},
		tableBody,
	)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listAction handles the list command and prints a table of all the saved
// routines.
func listAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	routines, err := db.ListRoutines()
	if err != nil {
		return err
	}

	sortRoutines(routines)

	if ctx.Bool("json") {
		if routines == nil {
			routines = []routine.Routine{}
		}

		return printJSON(os.Stdout, routines)
	}

	if len(routines) == 0 {
		report.Nothing(noRoutinesMsg)
		return nil
	}

	printRoutinesTable(os.Stdout, routines)

	return nil
}

// showAction prints the breakdown of a single routine.
func showAction(ctx *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := findRoutine(db, ctx.Args().First())
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(os.Stdout, r)
	}

	pterm.DefaultSection.Println(r.Name)

	printRoundsTable(os.Stdout, r)

	pterm.Printfln(
		"%s: %s (%s including the final round rest)",
		ui.Highlight("Total"),
		routineDuration(r),
		timeutil.HumanDuration(routine.TotalTime(r)),
	)

	return nil
}
