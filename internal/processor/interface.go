package processor

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/watcher"
)

// Processor reacts to filesystem creation events.
type Processor interface {
	HandleEvent(ctx context.Context, ev watcher.Event)
}
