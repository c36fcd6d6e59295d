package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

type implWatcher struct {
	root    string
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// Start dispatches creation events to the handler one at a time until ctx is
// cancelled or the watcher is stopped. There is no settle delay: a file that
// is still being copied is handed over as soon as it appears.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.root)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			w.dispatch(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) dispatch(ctx context.Context, path string) {
	info, err := os.Lstat(path)
	if err != nil {
		w.logger.Debug(ctx, "Created entry vanished before handling: %s", path)
		return
	}

	ev := Event{Path: path, IsDir: info.IsDir()}
	if !ev.IsDir {
		w.handler(ctx, ev)
		return
	}

	// fsnotify is not recursive; new subtrees need their own watches. Files
	// written before the watches landed never produce an event, so they are
	// handed over from the walk. One created after its directory was watched
	// may arrive twice; the handler skips what is already processed.
	files, err := w.addTree(path)
	if err != nil {
		w.logger.Warn(ctx, "Failed to watch new directory %s: %v", path, err)
	}

	w.handler(ctx, ev)
	for _, f := range files {
		w.handler(ctx, Event{Path: f})
	}
}

// addTree watches dir and every directory below it, and returns the regular
// files found on the way.
func (w *implWatcher) addTree(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if errors.Is(err, fs.ErrPermission) && d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
	return files, err
}
