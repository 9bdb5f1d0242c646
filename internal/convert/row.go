package convert

import "errors"

var ErrMissingHeaders = errors.New("please provide custom header names")

// parsed table row; either HeaderedRow or PositionalRow
type Row interface {
	isRow()
}

// row keyed by column name, produced when the table has a header line
type HeaderedRow map[string]string

// row of values in column order, produced when the table has no header line
type PositionalRow []string

func (HeaderedRow) isRow()   {}
func (PositionalRow) isRow() {}

// names of the columns holding start time, end time and cue text
type HeaderMapping struct {
	StartTime string
	EndTime   string
	Text      string
}

// column names used by the sample file
var DefaultHeaderMapping = HeaderMapping{
	StartTime: "start_time",
	EndTime:   "end_time",
	Text:      "subtitle_text",
}

// reports ErrMissingHeaders if any of the three names is empty
func (m HeaderMapping) Validate() error {
	if m.StartTime == "" || m.EndTime == "" || m.Text == "" {
		return ErrMissingHeaders
	}
	return nil
}

func (m HeaderMapping) IsZero() bool {
	return m == HeaderMapping{}
}

func (r HeaderedRow) has(name string) bool {
	return isPresent(r[name])
}

func isPresent(v string) bool {
	return v != ""
}
