package tabular

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mgpai22/csv2srt/internal/convert"
	"github.com/mgpai22/csv2srt/internal/subtitle"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	doc := &subtitle.Document{Cues: []subtitle.Cue{
		{Index: 1, Start: "00:00:01,000", End: "00:00:03,000", Text: "Hello, world!"},
		{Index: 2, Start: "00:00:04,000", End: "00:00:06,000", Text: "Two\nlines with \"quotes\""},
	}}

	tests := []struct {
		name string
		opts Options
	}{
		{"positional", Options{}},
		{"headered", Options{HasHeaders: true}},
		{"semicolon", Options{Comma: ';'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, doc, tt.opts, convert.DefaultHeaderMapping); err != nil {
				t.Fatalf("WriteCSV failed: %v", err)
			}

			rows, err := Parse(&buf, tt.opts)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			got := convert.Convert(rows, tt.opts.HasHeaders, convert.DefaultHeaderMapping)
			if got != doc.String() {
				t.Errorf("round trip = %q, want %q", got, doc.String())
			}
		})
	}
}

func TestWriteCSVHeaderRow(t *testing.T) {
	var buf bytes.Buffer
	mapping := convert.HeaderMapping{StartTime: "From", EndTime: "To", Text: "Line"}
	if err := WriteCSV(&buf, nil, Options{HasHeaders: true}, mapping); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if buf.String() != "From,To,Line\n" {
		t.Errorf("output = %q", buf.String())
	}

	err := WriteCSV(&buf, nil, Options{HasHeaders: true}, convert.HeaderMapping{})
	if !errors.Is(err, convert.ErrMissingHeaders) {
		t.Errorf("expected ErrMissingHeaders, got %v", err)
	}
}
