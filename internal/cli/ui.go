package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/csv2srt/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var uiCmd = &cobra.Command{
	Use:   "ui [csv_file]",
	Short: "Open the interactive conversion form",
	Long: `Open a terminal form for converting a table step by step: enter the
file path, tick "CSV has headers" and fill in the column names if needed,
then convert and save the SRT file.

Flags and config values pre-fill the form.

Examples:
  csv2srt ui
  csv2srt ui subtitles.csv --headers -o srt/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)

	addTableFlags(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("ui needs an interactive terminal; use convert instead")
	}

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	}
	outDir, _ := cmd.Flags().GetString("output")

	s, err := newSession(cmd, inputPath, cfg)
	if err != nil {
		return err
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", outDir, err)
		}
	}

	saved, err := tui.Run(s, outDir, logger)
	if err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	for _, path := range saved {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}
	return nil
}
