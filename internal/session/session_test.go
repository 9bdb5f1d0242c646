package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mgpai22/csv2srt/internal/convert"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestConvertRequiresFile(t *testing.T) {
	s := New()
	err := s.Convert()
	if !errors.Is(err, ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
	if s.Message() != "Please upload a CSV file." {
		t.Errorf("unexpected message %q", s.Message())
	}
}

func TestConvertMissingHeaderNamesSkipsParsing(t *testing.T) {
	s := New()
	// the file does not exist; a parse attempt would report ErrParse instead
	s.SelectFile(filepath.Join(t.TempDir(), "missing.csv"))
	s.HasHeaders = true
	s.Headers.Text = ""

	err := s.Convert()
	if !errors.Is(err, ErrMissingHeaders) {
		t.Fatalf("expected ErrMissingHeaders, got %v", err)
	}
	if s.Message() != "Please provide custom header names." {
		t.Errorf("unexpected message %q", s.Message())
	}
	if s.SRT() != "" {
		t.Errorf("expected no output, got %q", s.SRT())
	}
}

func TestConvertParseErrorClearsResult(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "\"00:00:01,000\",\"00:00:02,000\",Hi\n")
	bad := writeFile(t, dir, "bad.csv", "a,b\"c,d\n")

	s := New()
	s.SelectFile(good)
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if s.Message() != SuccessMessage {
		t.Errorf("unexpected message %q", s.Message())
	}

	s.SelectFile(bad)
	err := s.Convert()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if s.Message() != "Error parsing CSV file." {
		t.Errorf("unexpected message %q", s.Message())
	}
	if s.SRT() != "" {
		t.Errorf("expected result cleared, got %q", s.SRT())
	}

	s.SelectFile(good)
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if s.Err != nil {
		t.Errorf("expected error cleared, got %v", s.Err)
	}
}

func TestConvertWithDefaultHeaders(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.final.csv", SampleCSV)

	s := New()
	s.SelectFile(path)
	s.HasHeaders = true
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	want := "1\n00:00:01,000 --> 00:00:03,000\nHello, world!\n\n" +
		"2\n00:00:04,000 --> 00:00:06,000\nThis is a sample subtitle.\n\n"
	if s.SRT() != want {
		t.Errorf("SRT() = %q, want %q", s.SRT(), want)
	}
	if s.OutputName() != "sample.final.srt" {
		t.Errorf("OutputName() = %q", s.OutputName())
	}
}

func TestSampleWithoutHeaderModeKeepsHeaderRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SampleFileName)
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	s := New()
	s.SelectFile(path)
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if s.Result.Len() != 3 {
		t.Fatalf("expected header row plus 2 cues, got %d", s.Result.Len())
	}
	if s.Result.Cues[0].Text != convert.DefaultHeaderMapping.Text {
		t.Errorf("first cue text = %q", s.Result.Cues[0].Text)
	}
}

func TestDownloadWritesAndResets(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "episode.csv", "\"00:00:01,000\",\"00:00:02,000\",Hi\n")
	outDir := filepath.Join(dir, "out")

	s := New()
	if _, err := s.Download(outDir); !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}

	s.SelectFile(path)
	s.HasHeaders = false
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	written, err := s.Download(outDir)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if written != filepath.Join(outDir, "episode.srt") {
		t.Errorf("written path = %q", written)
	}
	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(content) != "1\n00:00:01,000 --> 00:00:02,000\nHi\n\n" {
		t.Errorf("unexpected content %q", content)
	}

	if s.File != "" || s.Result != nil || s.Headers != convert.DefaultHeaderMapping {
		t.Errorf("session not reset: %+v", s)
	}
}

func TestInvalidateKeepsSettings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cues.csv", SampleCSV)

	s := New()
	s.SelectFile(path)
	s.HasHeaders = true
	if err := s.Convert(); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	s.Invalidate()
	if s.Result != nil || s.Err != nil || s.SRT() != "" {
		t.Errorf("result not cleared: %+v", s)
	}
	if s.File != path || !s.HasHeaders {
		t.Errorf("settings changed: %+v", s)
	}
	if _, err := s.Download(t.TempDir()); !errors.Is(err, ErrNoResult) {
		t.Errorf("Download after Invalidate = %v, want ErrNoResult", err)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.SelectFile("/tmp/a.csv")
	s.HasHeaders = true
	s.Headers = convert.HeaderMapping{StartTime: "x"}
	s.Err = ErrParse

	s.Reset()
	if s.File != "" || s.FileName != "" || s.HasHeaders || s.Err != nil {
		t.Errorf("session not reset: %+v", s)
	}
	if s.Headers != convert.DefaultHeaderMapping {
		t.Errorf("headers not restored: %+v", s.Headers)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no file", ErrNoFile, "Please upload a CSV file."},
		{"wrapped parse", &wrapped{ErrParse}, "Error parsing CSV file."},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
