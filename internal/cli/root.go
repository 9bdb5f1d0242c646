package cli

import (
	"fmt"

	"github.com/mgpai22/csv2srt/internal/config"
	"github.com/mgpai22/csv2srt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "csv2srt",
	Short: "Convert CSV subtitle tables to SRT files",
	Long: `csv2srt turns tables of subtitle timings and text into SubRip (SRT)
subtitle files.

Each row supplies a start time, an end time and a line of text. Rows are read
either by position (first three columns) or by header name. Timestamps are
copied as they are, so they should already be in SRT form (00:00:01,000).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose {
			logger = logging.NewLogger(true)
		} else {
			logger = logging.NewLoggerWithLevel(cfg.Logging.Level)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.DefaultPath, "Path to YAML config file")
}

// an explicitly named config must exist; the default one is optional
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		return loaded, nil
	}
	loaded, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return loaded, nil
}
