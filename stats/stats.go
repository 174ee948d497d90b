// Package stats reports training statistics for past runs
package stats

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/intervals/internal/models"
	"github.com/ayoisaiah/intervals/internal/timeutil"
	"github.com/ayoisaiah/intervals/internal/ui"
)

const (
	barChartChar = "▇"
	hoursInADay  = 24
	maxDailyBars = 31
)

type aggregatePeriod string

const (
	daily  aggregatePeriod = "Daily"
	weekly aggregatePeriod = "Weekly"
	hourly aggregatePeriod = "Hourly"
)

// Summary holds the totals for a reporting period.
type Summary struct {
	Routines     map[string]time.Duration
	TotalTime    time.Duration
	AvgTime      time.Duration
	Completed    int
	Abandoned    int
	AvgCompleted int
	AvgAbandoned int
}

type aggregates struct {
	daily  map[int]time.Duration
	weekly map[int]time.Duration
	hourly map[int]time.Duration
}

// dayKey identifies a calendar day as yyyymmdd.
func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func dayFromKey(key int) time.Time {
	return time.Date(
		key/10000,
		time.Month(key/100%100),
		key%100,
		0,
		0,
		0,
		0,
		time.Local,
	)
}

// numberOfDays is the length of the period in whole days, never less than
// one.
func numberOfDays(start, end time.Time) int {
	days := timeutil.Round(end.Sub(start).Hours()) / hoursInADay
	if days < 1 {
		return 1
	}

	return days
}

// filterRuns drops runs with a missing or invalid end time.
func filterRuns(runs []models.Run) []models.Run {
	filtered := make([]models.Run, 0, len(runs))

	for i := range runs {
		run := runs[i]

		if run.EndTime.IsZero() || run.EndTime.Before(run.StartTime) {
			continue
		}

		filtered = append(filtered, run)
	}

	return filtered
}

// Compute calculates the totals and per-day averages of runs between start
// and end.
func Compute(runs []models.Run, start, end time.Time) Summary {
	totals := Summary{
		Routines: make(map[string]time.Duration),
	}

	for i := range runs {
		run := &runs[i]

		duration := run.Duration()

		totals.TotalTime += duration
		totals.Routines[run.RoutineName] += duration

		if run.Completed {
			totals.Completed++
		} else {
			totals.Abandoned++
		}
	}

	days := numberOfDays(start, end)

	totals.AvgTime = totals.TotalTime / time.Duration(days)
	totals.AvgCompleted = timeutil.Round(
		float64(totals.Completed) / float64(days),
	)
	totals.AvgAbandoned = timeutil.Round(
		float64(totals.Abandoned) / float64(days),
	)

	return totals
}

func computeAggregates(runs []models.Run, start, end time.Time) aggregates {
	totals := aggregates{
		daily:  make(map[int]time.Duration),
		weekly: make(map[int]time.Duration),
		hourly: make(map[int]time.Duration),
	}

	for date := timeutil.RoundToStart(start); date.Before(end); date = date.AddDate(0, 0, 1) {
		totals.daily[dayKey(date)] = 0
	}

	for i := range 7 {
		totals.weekly[i] = 0
	}

	for i := range hoursInADay {
		totals.hourly[i] = 0
	}

	for i := range runs {
		run := &runs[i]
		local := run.StartTime.Local()

		totals.daily[dayKey(local)] += run.Duration()
		totals.weekly[int(local.Weekday())] += run.Duration()
		totals.hourly[local.Hour()] += run.Duration()
	}

	return totals
}

func barLabel(key int, period aggregatePeriod) string {
	switch period {
	case daily:
		return dayFromKey(key).Format("January 02, 2006")
	case weekly:
		return time.Weekday(key).String()
	case hourly:
		return fmt.Sprintf("%02d:00", key)
	}

	return fmt.Sprintf("%d", key)
}

func getBarChart(data map[int]time.Duration, period aggregatePeriod) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", period))

	keys := make([]int, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	bars := make(pterm.Bars, 0, len(keys))

	var peak int

	for _, k := range keys {
		value := timeutil.Round(data[k].Minutes())
		peak = max(peak, value)

		bars = append(bars, pterm.Bar{
			Value: value,
			Label: barLabel(k, period),
		})
	}

	if peak == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// getRoutines lists the time spent on each routine, longest first.
func getRoutines(routines map[string]time.Duration) string {
	if len(routines) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Routines")))

	names := make([]string, 0, len(routines))
	for name := range routines {
		names = append(names, name)
	}

	slices.SortStableFunc(names, func(a, b string) int {
		if d := routines[b] - routines[a]; d != 0 {
			if d > 0 {
				return 1
			}

			return -1
		}

		return strings.Compare(a, b)
	})

	for _, name := range names {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			name,
			ui.Green(timeutil.HumanDuration(int(routines[name].Seconds()))),
		))
	}

	return builder.String()
}

func getAverages(totals Summary) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Averages"))

	timeTrained := fmt.Sprintf(
		"Time trained: %s\n",
		ui.Green(timeutil.HumanDuration(int(totals.AvgTime.Seconds()))),
	)

	completed := fmt.Sprintln("Runs completed:", ui.Green(totals.AvgCompleted))
	abandoned := fmt.Sprintln("Runs abandoned:", ui.Green(totals.AvgAbandoned))

	return header + timeTrained + completed + abandoned
}

func getSummary(totals Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeTrained := fmt.Sprintf(
		"Time trained: %s\n",
		ui.Green(timeutil.HumanDuration(int(totals.TotalTime.Seconds()))),
	)

	completed := fmt.Sprintln("Runs completed:", ui.Green(totals.Completed))
	abandoned := fmt.Sprintln("Runs abandoned:", ui.Green(totals.Abandoned))

	return header + timeTrained + completed + abandoned
}

// Show prints the statistics for runs between start and end. The daily
// breakdown is omitted for periods longer than a month.
func Show(w io.Writer, runs []models.Run, start, end time.Time) {
	runs = filterRuns(runs)

	// all time starts from the first run
	if start.IsZero() && len(runs) > 0 {
		start = timeutil.RoundToStart(runs[0].StartTime.Local())
	}

	totals := Compute(runs, start, end)
	aggr := computeAggregates(runs, start, end)

	timePeriod := "Reporting period: " + start.Format("January 02, 2006") +
		" - " + end.Format("January 02, 2006")

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	var history string
	if len(aggr.daily) <= maxDailyBars {
		history = getBarChart(aggr.daily, daily)
	}

	output := fmt.Sprint(
		header,
		getSummary(totals),
		getAverages(totals),
		getRoutines(totals.Routines),
		history,
		getBarChart(aggr.weekly, weekly),
		getBarChart(aggr.hourly, hourly),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
