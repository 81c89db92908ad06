package history

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/store"
)

// Format is an export format for `pomo history`.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var errUnknownFormat = &apperr.Error{
	Message: "unknown export format %q",
}

// Export is the document written by Write.
type Export struct {
	Records []store.Record `json:"records" yaml:"records"`
	Summary Summary        `json:"summary" yaml:"summary"`
}

// Write encodes records and their summary to w.
func Write(w io.Writer, records []store.Record, f Format) error {
	if records == nil {
		records = []store.Record{}
	}

	doc := Export{
		Records: records,
		Summary: Summarize(records),
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	}

	return errUnknownFormat.Fmt(f)
}
