package cli

import (
	"fmt"

	"github.com/mgpai22/csv2srt/internal/config"
	"github.com/mgpai22/csv2srt/internal/session"
	"github.com/spf13/cobra"
)

// registers the flags that describe how a table is read
func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().
		BoolP("headers", "H", false, "Table has a header row; columns are looked up by name")
	cmd.Flags().
		String("start-header", "", "Header name of the start time column (default \"start_time\")")
	cmd.Flags().
		String("end-header", "", "Header name of the end time column (default \"end_time\")")
	cmd.Flags().
		String("text-header", "", "Header name of the subtitle text column (default \"subtitle_text\")")
	cmd.Flags().
		String("sheet", "", "Sheet to read from .xlsx files (default first sheet)")
	cmd.Flags().
		StringP("delimiter", "d", "", "Field delimiter for text tables (default ',' or tab for .tsv)")
}

// builds a session for path from config values overridden by flags
func newSession(cmd *cobra.Command, path string, c *config.Config) (*session.Session, error) {
	if c == nil {
		c = config.Default()
	}

	s := session.New()
	s.SelectFile(path)
	s.HasHeaders = c.Headers.Enabled
	s.Headers = c.Headers.Mapping()
	s.Sheet = c.Input.Sheet
	s.Comma = c.Input.Comma()

	flags := cmd.Flags()
	if flags.Changed("headers") {
		s.HasHeaders, _ = flags.GetBool("headers")
	}
	if flags.Changed("start-header") {
		s.Headers.StartTime, _ = flags.GetString("start-header")
	}
	if flags.Changed("end-header") {
		s.Headers.EndTime, _ = flags.GetString("end-header")
	}
	if flags.Changed("text-header") {
		s.Headers.Text, _ = flags.GetString("text-header")
	}
	if flags.Changed("sheet") {
		s.Sheet, _ = flags.GetString("sheet")
	}
	if flags.Changed("delimiter") {
		delimiter, _ := flags.GetString("delimiter")
		input := config.InputConfig{Delimiter: delimiter}
		if delimiter == "" {
			return nil, fmt.Errorf("invalid delimiter: must not be empty")
		}
		if err := input.ValidateDelimiter(); err != nil {
			return nil, fmt.Errorf("invalid %w", err)
		}
		s.Comma = input.Comma()
	}

	return s, nil
}

// wraps a session failure with the alert text shown to the user
func conversionError(err error) error {
	return fmt.Errorf("%s (%w)", session.Message(err), err)
}
