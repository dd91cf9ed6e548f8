// Package watch regenerates a package whenever its catalog file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period after the last change before a run.
const DefaultDelay = 100 * time.Millisecond

type options struct {
	delay  time.Duration
	logger *slog.Logger
}

// Option configures Run.
type Option func(*options)

// WithDelay sets the quiet period that coalesces bursts of file events
// into one run.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.delay = d
		}
	}
}

// WithLogger sets the logger of run failures and watcher errors.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Run calls fn once, then again after every write or re-creation of the
// file at path, until ctx is done. The parent directory is watched so that
// editors replacing the file by rename are followed. Failures of fn are
// logged and do not stop the watch.
func Run(ctx context.Context, path string, fn func(context.Context) error, opts ...Option) error {
	o := options{delay: DefaultDelay, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	run := func() {
		start := time.Now()
		if err := fn(ctx); err != nil {
			o.logger.Error("generation failed", "catalog", path, "error", err)
			return
		}
		o.logger.Info("regenerated", "catalog", path, "duration", time.Since(start))
	}
	run()

	timer := time.NewTimer(o.delay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			o.logger.Debug("catalog changed", "catalog", path, "op", ev.Op.String())
			timer.Reset(o.delay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.logger.Warn("watcher error", "error", err)
		case <-timer.C:
			run()
		}
	}
}
