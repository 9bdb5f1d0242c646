package tabular

import (
	"path/filepath"
	"strings"

	"github.com/mgpai22/csv2srt/internal/convert"
)

// Open reads a table file, choosing the reader by extension. Unknown
// extensions are read as comma separated text.
func Open(path string, opts Options) ([]convert.Row, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		return ParseXLSX(path, opts)
	case ".tsv", ".tab":
		if opts.Comma == 0 {
			opts.Comma = '\t'
		}
		return ParseFile(path, opts)
	default:
		return ParseFile(path, opts)
	}
}

// IsTableFile reports whether path has an extension Open reads natively.
func IsTableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".tab", ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}
