package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/history"
	"github.com/ayoisaiah/pomo/internal/store"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	noRecordsMsg = "No stages found for the specified time range"

	dateLayout12 = "Jan 02, 2006 03:04 PM"
	dateLayout24 = "Jan 02, 2006 15:04"
)

// printRecordsTable prints a table of recorded stages to w.
func printRecordsTable(w io.Writer, records []store.Record, twentyFour bool) error {
	layout := dateLayout12
	if twentyFour {
		layout = dateLayout24
	}

	tableBody := make([][]string, len(records))

	for i := range records {
		r := &records[i]

		statusText := ui.Green("completed")
		if r.Skipped {
			statusText = ui.Red("skipped")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			ui.Stage(r.Stage, r.Stage.Label()),
			r.StartedAt.Local().Format(layout),
			r.EndedAt.Local().Format(layout),
			timeutil.FormatClock(r.ElapsedSeconds),
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "STAGE", "STARTED", "ENDED", "ELAPSED", "STATUS"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

// printSummary prints the totals of records to w.
func printSummary(w io.Writer, records []store.Record) {
	s := history.Summarize(records)

	fmt.Fprintf(w, "%s %s\n", ui.Highlight("Focus time:"), history.FormatDuration(s.FocusTime))
	fmt.Fprintf(w, "%s %s\n", ui.Highlight("Break time:"), history.FormatDuration(s.BreakTime))
	fmt.Fprintf(
		w,
		"%s %d completed, %d skipped\n",
		ui.Highlight("Focus stages:"),
		s.CompletedFocus,
		s.SkippedFocus,
	)
}

// listRecords prints the records followed by their summary.
func listRecords(w io.Writer, records []store.Record, twentyFour bool) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	if err := printRecordsTable(w, records, twentyFour); err != nil {
		return err
	}

	printSummary(w, records)

	return nil
}
