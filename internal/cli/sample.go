package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/csv2srt/internal/session"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write a sample CSV file",
	Long: `Write a small CSV file showing the expected layout.

The sample has a header row using the default column names
(start_time, end_time, subtitle_text) and two cues, so it converts with
"csv2srt convert sample.csv --headers".

Examples:
  csv2srt sample
  csv2srt sample examples/cues.csv --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().
		BoolP("force", "f", false, "Overwrite the file if it exists")
}

func runSample(cmd *cobra.Command, args []string) error {
	path := session.SampleFileName
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists: use --force to overwrite", path)
	}

	if err := session.WriteSample(path); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}

	logger.Debugw("Wrote sample", "path", path)

	absPath, _ := filepath.Abs(path)
	fmt.Fprintf(cmd.OutOrStdout(), "Sample CSV written: %s\n", absPath)
	return nil
}
