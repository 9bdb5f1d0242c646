package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// SubRip format
type SRTWriter struct{}

var extensionRegex = regexp.MustCompile(`\.[^/.]+$`)

func NewWriter() Writer {
	return &SRTWriter{}
}

// writes the document to an SRT file
func (w *SRTWriter) Write(doc *Document, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("failed to write SRT file: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// strips the last extension from the base name and appends .srt
func OutputName(inputPath string) string {
	return BaseName(inputPath) + ".srt"
}

// file name without directory and last extension
func BaseName(inputPath string) string {
	return extensionRegex.ReplaceAllString(filepath.Base(inputPath), "")
}
