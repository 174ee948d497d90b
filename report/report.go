// Package report prints the outcome of commands that change saved data
package report

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
)

// Output is where outcome messages are written.
var Output io.Writer = os.Stdout

func RoutineSaved(name string) {
	pterm.Success.WithWriter(Output).Printfln("routine %q saved", name)
}

func RoutineDeleted(name string) {
	pterm.Success.WithWriter(Output).Printfln("routine %q deleted", name)
}

func Exported(count int, path string) {
	pterm.Success.WithWriter(Output).Printfln("exported %d routines to %s", count, path)
}

func RoutinesImported(count int) {
	pterm.Success.WithWriter(Output).Printfln("imported %d routines", count)
}

func SettingsImported() {
	pterm.Success.WithWriter(Output).Println("imported settings")
}

func SettingsReset() {
	pterm.Success.WithWriter(Output).Println("settings restored to their defaults")
}

// Nothing reports that there was nothing to show.
func Nothing(msg string) {
	pterm.Info.WithWriter(Output).Println(msg)
}

// Fatal prints err and quits the timer.
func Fatal(err error) tea.Cmd {
	pterm.Error.WithWriter(Output).Println(err)
	return tea.Quit
}
