package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

// New creates a Watcher for root and every directory below it.
func New(root string, handler EventHandler, log logger.Logger) (Watcher, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &implWatcher{
		root:    root,
		handler: handler,
		logger:  log,
		watcher: watcher,
	}

	if _, err := w.addTree(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}
