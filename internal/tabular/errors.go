package tabular

import (
	"errors"
	"fmt"
)

// ErrParse indicates the input could not be read as a table.
var ErrParse = errors.New("error parsing table")

// ParseError describes where a table failed to parse.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse %s line %d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports every ParseError as ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func wrapParseErr(path string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Path: path, Line: line, Err: err}
}
