// Package watch re-runs an upload whenever a watched file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/latexnn/modelpost/pkg/log"
)

// UploadFunc performs one upload. Watch mode calls it once at start and
// again after every debounced change.
type UploadFunc func(ctx context.Context) error

// Watcher triggers an UploadFunc on changes to a single file.
type Watcher struct {
	path     string
	debounce time.Duration
	upload   UploadFunc
	logger   log.Logger
}

// New creates a Watcher for path. A nil logger is replaced by a no-op one.
func New(path string, debounce time.Duration, upload UploadFunc, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoop()
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		upload:   upload,
		logger:   logger,
	}
}

// Run uploads once, then watches until ctx is done. Only the initial upload
// error is returned; later failures are logged. Uploads never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := w.upload(ctx); err != nil {
		return err
	}
	w.logger.Info("watching for changes", log.String("path", target), log.Duration("debounce", w.debounce))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Debug("change detected, uploading", log.String("path", target))
			if err := w.upload(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Error("upload failed", log.String("path", target), log.Err(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}
