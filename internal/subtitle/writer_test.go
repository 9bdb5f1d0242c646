package subtitle

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDocumentString(t *testing.T) {
	doc := &Document{Cues: []Cue{
		{Index: 1, Start: "00:00:01,000", End: "00:00:04,000", Text: "Hello, world!"},
		{Index: 3, Start: "00:00:05,500", End: "00:00:08,200", Text: "This is a test."},
	}}

	want := "1\n00:00:01,000 --> 00:00:04,000\nHello, world!\n\n" +
		"3\n00:00:05,500 --> 00:00:08,200\nThis is a test.\n\n"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(len(want)) || buf.String() != want {
		t.Errorf("WriteTo wrote %d bytes %q", n, buf.String())
	}
}

func TestEmptyDocument(t *testing.T) {
	var nilDoc *Document
	if nilDoc.String() != "" || nilDoc.Len() != 0 {
		t.Error("nil document should render empty")
	}
	if (&Document{}).String() != "" {
		t.Error("empty document should render empty")
	}
}

func TestSRTWriterCreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "nested", "out.srt")

	doc := &Document{Cues: []Cue{
		{Index: 1, Start: "00:00:01,000", End: "00:00:02,000", Text: "Line"},
	}}
	if err := NewWriter().Write(doc, outPath); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(content) != doc.String() {
		t.Errorf("file content %q, want %q", content, doc.String())
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"subtitles.csv", "subtitles.srt"},
		{"talk.final.csv", "talk.final.srt"},
		{"noext", "noext.srt"},
		{"/data/in/episode 01.xlsx", "episode 01.srt"},
		{"dir.v2/file", "file.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := OutputName(tt.input); got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
