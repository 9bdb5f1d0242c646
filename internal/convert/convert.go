// Package convert turns parsed table rows into SRT cues.
//
// Cues are numbered by the 1-based position of their row in the input, so
// rows that are skipped leave gaps in the numbering. Timestamps and text are
// copied verbatim.
package convert

import (
	"github.com/mgpai22/csv2srt/internal/subtitle"
)

// emits one cue per row whose start, end and text columns are all non-empty
func HeaderedCues(rows []HeaderedRow, m HeaderMapping) []subtitle.Cue {
	var cues []subtitle.Cue
	for i, row := range rows {
		if cue, ok := headeredCue(i, row, m); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

// emits one cue per row with at least three values; extras are ignored
func PositionalCues(rows []PositionalRow) []subtitle.Cue {
	var cues []subtitle.Cue
	for i, row := range rows {
		if cue, ok := positionalCue(i, row); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

func headeredCue(i int, row HeaderedRow, m HeaderMapping) (subtitle.Cue, bool) {
	if !row.has(m.StartTime) || !row.has(m.EndTime) || !row.has(m.Text) {
		return subtitle.Cue{}, false
	}
	return subtitle.Cue{
		Index: i + 1,
		Start: row[m.StartTime],
		End:   row[m.EndTime],
		Text:  row[m.Text],
	}, true
}

func positionalCue(i int, row PositionalRow) (subtitle.Cue, bool) {
	if len(row) < 3 {
		return subtitle.Cue{}, false
	}
	return subtitle.Cue{
		Index: i + 1,
		Start: row[0],
		End:   row[1],
		Text:  row[2],
	}, true
}

func ConvertWithHeaders(rows []HeaderedRow, m HeaderMapping) string {
	doc := subtitle.Document{Cues: HeaderedCues(rows, m)}
	return doc.String()
}

func ConvertWithoutHeaders(rows []PositionalRow) string {
	doc := subtitle.Document{Cues: PositionalCues(rows)}
	return doc.String()
}

// builds the document for rows of either kind, selected once by hasHeaders.
// Rows of the other kind are skipped but keep their position.
func Document(rows []Row, hasHeaders bool, m HeaderMapping) *subtitle.Document {
	doc := &subtitle.Document{}
	for i, row := range rows {
		var (
			cue subtitle.Cue
			ok  bool
		)
		switch r := row.(type) {
		case HeaderedRow:
			if hasHeaders {
				cue, ok = headeredCue(i, r, m)
			}
		case PositionalRow:
			if !hasHeaders {
				cue, ok = positionalCue(i, r)
			}
		}
		if ok {
			doc.Cues = append(doc.Cues, cue)
		}
	}
	return doc
}

func Convert(rows []Row, hasHeaders bool, m HeaderMapping) string {
	return Document(rows, hasHeaders, m).String()
}
