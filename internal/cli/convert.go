package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/csv2srt/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [csv_file]",
	Short: "Convert a CSV table to an SRT subtitle file",
	Long: `Convert a table of subtitle timings and text into an SRT file.

Without --headers the first three columns of every row are used as start
time, end time and text. With --headers the first row names the columns and
the start, end and text columns are looked up by name.

Rows with missing values are skipped. Cue numbers follow the row position in
the table, so skipped rows leave gaps.

Supports .csv, .tsv and .xlsx input.

Examples:
  csv2srt convert subtitles.csv
  csv2srt convert subtitles.csv --headers
  csv2srt convert export.csv -H --start-header From --end-header To --text-header Line
  csv2srt convert cues.xlsx --sheet English -o english.srt
  csv2srt convert subtitles.csv --stdout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	addTableFlags(convertCmd)
	convertCmd.Flags().
		Bool("stdout", false, "Write SRT text to stdout instead of a file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	outputPath, _ := cmd.Flags().GetString("output")

	if inputPath != "" {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
	}

	s, err := newSession(cmd, inputPath, cfg)
	if err != nil {
		return err
	}

	logger.Infow("Converting table",
		"input", inputPath,
		"headers", s.HasHeaders,
	)
	if s.HasHeaders {
		logger.Debugw("Header mapping",
			"start_time", s.Headers.StartTime,
			"end_time", s.Headers.EndTime,
			"text", s.Headers.Text,
		)
	}

	if err := s.Convert(); err != nil {
		return conversionError(err)
	}

	if s.Result.Len() == 0 {
		logger.Warnw("No rows produced subtitle cues", "input", inputPath)
		fmt.Fprintln(os.Stderr, "No subtitle cues produced; nothing written")
		return nil
	}

	if toStdout {
		if _, err := s.Result.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to write SRT: %w", err)
		}
		logger.Infow("Conversion complete", "cues", s.Result.Len())
		return nil
	}

	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(inputPath), s.OutputName())
	}

	if err := subtitle.NewWriter().Write(s.Result, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "SRT conversion successful: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Cues: %d\n", s.Result.Len())

	return nil
}
