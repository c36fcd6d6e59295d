package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Event is a single creation under the watched tree.
type Event struct {
	Path  string
	IsDir bool
}

// EventHandler handles one Event. Calls are never concurrent.
type EventHandler func(ctx context.Context, ev Event)
