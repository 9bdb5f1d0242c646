// Package session holds the state of one conversion request: the selected
// file, the header settings, and the last result or error. It enforces the
// checks that must pass before a table is parsed.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mgpai22/csv2srt/internal/convert"
	"github.com/mgpai22/csv2srt/internal/subtitle"
	"github.com/mgpai22/csv2srt/internal/tabular"
)

var (
	ErrNoFile         = errors.New("no input file selected")
	ErrMissingHeaders = convert.ErrMissingHeaders
	ErrParse          = tabular.ErrParse
	ErrNoResult       = errors.New("nothing to download")
)

// user facing text for each failure a conversion can report
var messages = map[error]string{
	ErrNoFile:         "Please upload a CSV file.",
	ErrMissingHeaders: "Please provide custom header names.",
	ErrParse:          "Error parsing CSV file.",
	ErrNoResult:       "Please convert a CSV file first.",
}

const SuccessMessage = "SRT conversion successful."

// Message returns the alert text for err, or the error text itself for
// failures outside the known set.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for target, msg := range messages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	File       string
	FileName   string
	HasHeaders bool
	Headers    convert.HeaderMapping
	Sheet      string
	Comma      rune

	Err    error
	Result *subtitle.Document
}

// New returns a session with header mode off and the default header names
// filled in.
func New() *Session {
	return &Session{Headers: convert.DefaultHeaderMapping}
}

// SelectFile records the input path and its base name without extension.
// An empty path leaves the current selection unchanged.
func (s *Session) SelectFile(path string) {
	if path == "" {
		return
	}
	s.File = path
	s.FileName = subtitle.BaseName(path)
}

// Convert validates the request, parses the file and replaces the previous
// result. On failure the result is cleared and the error is also kept in Err.
func (s *Session) Convert() error {
	if s.File == "" {
		return s.fail(ErrNoFile)
	}
	if s.HasHeaders {
		if err := s.Headers.Validate(); err != nil {
			return s.fail(err)
		}
	}

	rows, err := tabular.Open(s.File, tabular.Options{
		HasHeaders: s.HasHeaders,
		Comma:      s.Comma,
		Sheet:      s.Sheet,
	})
	if err != nil {
		return s.fail(err)
	}

	s.Result = convert.Document(rows, s.HasHeaders, s.Headers)
	s.Err = nil
	return nil
}

func (s *Session) fail(err error) error {
	s.Err = err
	s.Result = nil
	return err
}

// SRT returns the converted text, empty before a successful conversion.
func (s *Session) SRT() string {
	return s.Result.String()
}

// OutputName is the download file name derived from the selected file.
func (s *Session) OutputName() string {
	return s.FileName + ".srt"
}

// Message returns the alert text for the current state.
func (s *Session) Message() string {
	if s.Err != nil {
		return Message(s.Err)
	}
	if s.Result != nil && s.SRT() != "" {
		return SuccessMessage
	}
	return ""
}

// Download writes the result into dir and resets the session. It returns
// the path written.
func (s *Session) Download(dir string) (string, error) {
	if s.SRT() == "" {
		return "", ErrNoResult
	}
	path := filepath.Join(dir, s.OutputName())
	if err := subtitle.NewWriter().Write(s.Result, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	s.Reset()
	return path, nil
}

// Invalidate drops the last result and error. Callers use it whenever an
// input changes so a result never outlives the settings that produced it.
func (s *Session) Invalidate() {
	s.Err = nil
	s.Result = nil
}

// Reset clears the selection, result and error and restores the default
// settings.
func (s *Session) Reset() {
	*s = *New()
}
