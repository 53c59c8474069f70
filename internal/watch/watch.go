// Package watch reports changes to a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// File watches path and sends on the returned channel after the file is
// written, created or renamed into place. The parent directory is watched so
// atomic replace-on-save keeps working. The channel is closed once ctx is
// done.
func File(ctx context.Context, path string, debounce time.Duration, logger *zap.Logger) (<-chan struct{}, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("watching file", zap.String("path", abs))

	out := make(chan struct{}, 1)
	go run(ctx, w, abs, debounce, logger, out)
	return out, nil
}

func run(ctx context.Context, w *fsnotify.Watcher, path string, debounce time.Duration, logger *zap.Logger, out chan<- struct{}) {
	defer close(out)
	defer w.Close()

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
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("file event", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			if debounce <= 0 {
				notify(out)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			notify(out)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// notify never blocks; a pending signal already covers the new change.
func notify(out chan<- struct{}) {
	select {
	case out <- struct{}{}:
	default:
	}
}
