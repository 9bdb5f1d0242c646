package tabular

import (
	"fmt"

	"github.com/mgpai22/csv2srt/internal/convert"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads one sheet of a spreadsheet. Rows are padded to the width
// of the widest row. Empty rows between data rows are kept so cue numbers
// match a CSV export of the sheet; trailing empty rows are dropped.
func ParseXLSX(path string, opts Options) ([]convert.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, wrapParseErr(path, 0, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, wrapParseErr(path, 0, fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, wrapParseErr(path, 0, fmt.Errorf("sheet %q not found", sheet))
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, wrapParseErr(path, 0, err)
	}

	return rowsFromRecords(normalizeSheetRows(raw), opts.HasHeaders), nil
}

func normalizeSheetRows(raw [][]string) [][]string {
	for len(raw) > 0 && isBlankRow(raw[len(raw)-1]) {
		raw = raw[:len(raw)-1]
	}

	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}

	records := make([][]string, 0, len(raw))
	for _, row := range raw {
		record := make([]string, width)
		copy(record, row)
		records = append(records, record)
	}
	return records
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
