package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mgpai22/csv2srt/internal/logging"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        *logging.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settle        time.Duration
	match         func(path string) bool
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the input directory and runs the handler for each new
// table file, at most maxConcurrent at a time. It returns after ctx is
// cancelled and in-flight handlers have finished.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Infow("File watcher started",
		"dir", w.inputDir,
		"max_concurrent", w.maxConcurrent,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Infow("Waiting for ongoing conversions to complete")
			w.wg.Wait()
			w.logger.Infow("File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.match(event.Name) {
				w.logger.Debugw("Ignoring unsupported file", "path", event.Name)
				continue
			}

			w.logger.Infow("New table detected", "path", event.Name)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if !w.wait(ctx) {
						return
					}
					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Errorw("Failed to convert", "path", filePath, "error", err)
					}
				}(event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Errorw("Watcher error", "error", err)
		}
	}
}

// gives the writer of a new file time to finish; false if ctx ended first
func (w *implWatcher) wait(ctx context.Context) bool {
	if w.settle == 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(w.settle)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
