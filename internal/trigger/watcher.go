// Package trigger invalidates the note cache when an external process
// touches a trigger file. Writers that push notes through other channels
// poke the file after committing, so connected UIs see fresh data before
// the TTL would have expired.
package trigger

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Watch watches path and calls onTrigger after write, create, or rename
// events, debounced so a burst collapses into one refresh. The parent
// directory is watched rather than the file itself because most writers
// replace the file instead of writing in place. Watch blocks until ctx is
// cancelled.
func Watch(ctx context.Context, path string, logger *slog.Logger, onTrigger func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Info("trigger: watching", slog.String("path", path))

	// timer debounces bursts of trigger-file writes.
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("trigger: stopped")
			return nil

		case <-fire:
			logger.Debug("trigger: refreshing")
			onTrigger()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("trigger: error", slog.String("error", watchErr.Error()))
		}
	}
}
