// Package tabular reads delimited text and spreadsheets into convert rows.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/mgpai22/csv2srt/internal/convert"
)

var utf8BOM = []byte("\ufeff")

// Options controls how a table is read.
type Options struct {
	// HasHeaders treats the first record as column names.
	HasHeaders bool
	// Comma is the field delimiter for delimited text. Zero means ','.
	Comma rune
	// Sheet names the spreadsheet sheet to read. Empty means the first sheet.
	Sheet string
}

// Parse reads delimited text from r. Records may have differing field
// counts. A blank line between records is a row with one empty field, so it
// still takes a position; blank lines at the end of the input are ignored.
func Parse(r io.Reader, opts Options) ([]convert.Row, error) {
	return parse("", r, opts)
}

// ParseFile reads the delimited text file at path.
func ParseFile(path string, opts Options) ([]convert.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, wrapParseErr(path, 0, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return parse(path, file, opts)
}

func parse(path string, r io.Reader, opts Options) ([]convert.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapParseErr(path, 0, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	records, err := readRecords(data, opts.Comma)
	if err != nil {
		line := 0
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			line = csvErr.Line
		}
		return nil, wrapParseErr(path, line, err)
	}

	return rowsFromRecords(records, opts.HasHeaders), nil
}

// readRecords reads every record and puts back the blank lines the csv
// reader skips over, as single empty-field records.
func readRecords(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	if comma != 0 {
		reader.Comma = comma
	}

	var records [][]string
	nextLine := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		for ; nextLine < line; nextLine++ {
			records = append(records, []string{""})
		}
		records = append(records, record)
		nextLine = bytes.Count(data[:reader.InputOffset()], []byte("\n")) + 1
	}
}

// rowsFromRecords maps raw records to rows. In header mode the first
// non-blank record names the columns; later duplicates of a name overwrite
// earlier ones and fields beyond the header are dropped.
func rowsFromRecords(records [][]string, hasHeaders bool) []convert.Row {
	if !hasHeaders {
		rows := make([]convert.Row, 0, len(records))
		for _, record := range records {
			rows = append(rows, convert.PositionalRow(record))
		}
		return rows
	}

	for len(records) > 0 && isBlankRow(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return []convert.Row{}
	}

	header := records[0]
	rows := make([]convert.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(convert.HeaderedRow, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows
}
