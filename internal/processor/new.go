package processor

import (
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/state"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
)

type implProcessor struct {
	store   state.Store
	adapter transcriber.Adapter
	logger  logger.Logger
}

// New creates a new Processor instance
func New(store state.Store, adapter transcriber.Adapter, log logger.Logger) Processor {
	return &implProcessor{
		store:   store,
		adapter: adapter,
		logger:  log,
	}
}
