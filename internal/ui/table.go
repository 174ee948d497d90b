package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes a boxed table with a header row. Nothing is written if
// there are no rows.
func PrintTable(w io.Writer, header []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(w, str)
}
