package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, str)

	return err
}
