package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mgpai22/csv2srt/internal/convert"
	"github.com/mgpai22/csv2srt/internal/subtitle"
)

// WriteCSV writes one row per cue in the layout Parse reads back with the
// same options. In header mode the first row holds the mapped column names.
// Cue numbers are not written; reading the table back numbers cues by row.
func WriteCSV(w io.Writer, doc *subtitle.Document, opts Options, m convert.HeaderMapping) error {
	writer := csv.NewWriter(w)
	if opts.Comma != 0 {
		writer.Comma = opts.Comma
	}

	if opts.HasHeaders {
		if err := m.Validate(); err != nil {
			return err
		}
		if err := writer.Write([]string{m.StartTime, m.EndTime, m.Text}); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	if doc != nil {
		for _, cue := range doc.Cues {
			if err := writer.Write([]string{cue.Start, cue.End, cue.Text}); err != nil {
				return fmt.Errorf("write cue %d: %w", cue.Index, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
