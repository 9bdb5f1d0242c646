package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mgpai22/csv2srt/internal/logging"
	"github.com/mgpai22/csv2srt/internal/tabular"
)

// Options tunes a watcher. Zero values select the defaults.
type Options struct {
	MaxConcurrent int
	// Settle is how long to wait after a file appears before handling it.
	Settle time.Duration
	// Match filters paths; defaults to tabular.IsTableFile.
	Match func(path string) bool
}

// New creates a new Watcher instance with concurrency control
func New(inputDir string, handler EventHandler, log *logging.Logger, opts Options) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.Settle < 0 {
		opts.Settle = 0
	}
	if opts.Match == nil {
		opts.Match = tabular.IsTableFile
	}
	if log == nil {
		log = logging.NewNop()
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settle:        opts.Settle,
		match:         opts.Match,
		semaphore:     make(chan struct{}, opts.MaxConcurrent),
	}, nil
}
