package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mgpai22/csv2srt/internal/subtitle"
	"github.com/mgpai22/csv2srt/internal/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input_dir]",
	Short: "Convert tables as they appear in a directory",
	Long: `Watch a directory and convert every .csv, .tsv or .xlsx file created in
it. Each file is converted on its own with the same settings as the convert
command; the SRT file is written to --out-dir (default: the watched
directory).

The directories can also be set in the config file under watch.input and
watch.output.

Examples:
  csv2srt watch inbox
  csv2srt watch inbox --out-dir srt --headers --concurrency 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	addTableFlags(watchCmd)
	watchCmd.Flags().
		String("out-dir", "", "Directory for converted SRT files")
	watchCmd.Flags().
		Int("concurrency", 0, "Number of files converted at once (default from config, 2)")
	watchCmd.Flags().
		Duration("settle", 500*time.Millisecond, "Delay before reading a new file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	inputDir := cfg.Watch.Input
	if len(args) > 0 {
		inputDir = args[0]
	}
	if inputDir == "" {
		return fmt.Errorf("input directory is required: pass it as an argument or set watch.input in the config")
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	settle, _ := cmd.Flags().GetDuration("settle")

	if outDir == "" {
		outDir = cfg.Watch.Output
	}
	if outDir == "" {
		outDir = inputDir
	}
	if concurrency == 0 {
		concurrency = cfg.Watch.MaxConcurrent
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	// validate flags once before any file arrives
	if _, err := newSession(cmd, "", cfg); err != nil {
		return err
	}

	for _, dir := range []string{inputDir, outDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	handler := func(ctx context.Context, path string) error {
		return convertWatched(cmd, path, outDir)
	}

	w, err := watcher.New(inputDir, handler, logger, watcher.Options{
		MaxConcurrent: concurrency,
		Settle:        settle,
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		_ = w.Stop()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infow("Watching for tables",
		"input", inputDir,
		"output", outDir,
		"concurrency", concurrency,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl+C to stop)\n", inputDir)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher error: %w", err)
	}

	logger.Infow("Watcher stopped")
	return nil
}

// converts one detected file with its own session
func convertWatched(cmd *cobra.Command, path, outDir string) error {
	s, err := newSession(cmd, path, cfg)
	if err != nil {
		return err
	}
	if err := s.Convert(); err != nil {
		return conversionError(err)
	}
	if s.Result.Len() == 0 {
		logger.Warnw("No rows produced subtitle cues", "input", path)
		return nil
	}

	outputPath := filepath.Join(outDir, subtitle.OutputName(path))
	if err := subtitle.NewWriter().Write(s.Result, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	logger.Infow("Converted table",
		"input", path,
		"output", outputPath,
		"cues", s.Result.Len(),
	)
	return nil
}
