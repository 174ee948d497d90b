package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/timeutil"
	"github.com/ayoisaiah/intervals/internal/ui"
	"github.com/ayoisaiah/intervals/report"
	"github.com/ayoisaiah/intervals/stats"
)

const noRunsMsg = "No runs found for the specified time range"

// historyRange converts the --since and --until values into a time range.
func historyRange(since, until string, now time.Time) (start, end time.Time, err error) {
	end = now

	if until != "" {
		end, err = timeutil.FromStr(until)
		if err != nil {
			return start, end, err
		}

		end = timeutil.RoundToEnd(end)
	}

	start, err = timeutil.FromStr(since)
	if err != nil {
		return start, end, err
	}

	return timeutil.RoundToStart(start), end, nil
}

// printRunsTable prints a table of past runs.
func printRunsTable(w io.Writer, runs []models.Run) {
	tableBody := make([][]string, len(runs))

	for i := range runs {
		run := &runs[i]

		statusText := ui.Green("completed")
		if !run.Completed {
			statusText = ui.Red("abandoned")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			run.RoutineName,
			run.StartTime.Local().Format("Jan 02, 2006 03:04 PM"),
			timeutil.HumanDuration(int(run.Duration().Seconds())),
			statusText,
		}
	}

	ui.PrintTable(
		w,
		[]string{"#", "ROUTINE", "START DATE", "DURATION", "STATUS"},
		tableBody,
	)
}

// historyAction lists the runs within a time period.
func historyAction(ctx *cli.Context) error {
	start, end, err := historyRange(
		ctx.String("since"),
		ctx.String("until"),
		time.Now(),
	)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	runs, err := db.GetRuns(start, end)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(os.Stdout, runs)
	}

	if len(runs) == 0 {
		report.Nothing(noRunsMsg)
		return nil
	}

	printRunsTable(os.Stdout, runs)

	var completed int

	for i := range runs {
		if runs[i].Completed {
			completed++
		}
	}

	pterm.Printfln(
		"%s: %d of %d runs completed",
		ui.Highlight("Summary"),
		completed,
		len(runs),
	)

	return nil
}

// statsAction reports training statistics for a time period.
func statsAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx, false); err != nil {
		return err
	}

	start, end, err := historyRange(
		ctx.String("since"),
		ctx.String("until"),
		time.Now(),
	)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	runs, err := db.GetRuns(start, end)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		report.Nothing(noRunsMsg)
		return nil
	}

	stats.Show(os.Stdout, runs, start, end)

	return nil
}
