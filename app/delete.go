package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/store"
)

// delRecords deletes the specified records. Unless skipConfirm is set, it
// prints them and asks for confirmation before proceeding.
func delRecords(
	db store.DB,
	records []store.Record,
	in io.Reader,
	out io.Writer,
	skipConfirm bool,
) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	if !skipConfirm {
		if err := printRecordsTable(out, records, false); err != nil {
			return err
		}

		warning := pterm.Warning.Sprint(
			"The above stages will be deleted permanently. Proceed? [y/N] ",
		)

		fmt.Fprint(out, warning)

		reader := bufio.NewReader(in)

		answer, _ := reader.ReadString('\n')

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			return nil
		}
	}

	if err := db.DeleteRecords(records); err != nil {
		return err
	}

	fmt.Fprintf(out, "%d stage(s) deleted\n", len(records))

	return nil
}
