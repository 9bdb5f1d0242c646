package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/csv2srt/internal/subtitle"
	"github.com/mgpai22/csv2srt/internal/tabular"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [srt_file]",
	Short: "Export an SRT file to a CSV table",
	Long: `Export the cues of an SRT file as CSV rows so they can be edited in a
spreadsheet and converted back.

The table uses the same layout convert reads with the same flags: three
columns (start, end, text), preceded by a header row when --headers is set.
Cues are renumbered from 1 when the table is converted back.

Examples:
  csv2srt export movie.srt
  csv2srt export movie.srt --headers -o movie.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addTableFlags(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	srtPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(srtPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", srtPath)
	}

	s, err := newSession(cmd, srtPath, cfg)
	if err != nil {
		return err
	}
	if s.HasHeaders {
		if err := s.Headers.Validate(); err != nil {
			return conversionError(err)
		}
	}

	doc, err := subtitle.ParseFile(srtPath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if doc.Len() == 0 {
		return fmt.Errorf("subtitle file contains no entries")
	}

	logger.Infow("Exporting subtitles",
		"input", srtPath,
		"cues", doc.Len(),
		"headers", s.HasHeaders,
	)

	var buf bytes.Buffer
	opts := tabular.Options{HasHeaders: s.HasHeaders, Comma: s.Comma}
	if err := tabular.WriteCSV(&buf, doc, opts, s.Headers); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(srtPath), s.FileName+".csv")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles exported successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Rows: %d\n", doc.Len())
	return nil
}
