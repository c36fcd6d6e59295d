package scanner

import (
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/state"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
)

type implScanner struct {
	store   state.Store
	adapter transcriber.Adapter
	logger  logger.Logger
}

// New creates a new Scanner instance
func New(store state.Store, adapter transcriber.Adapter, log logger.Logger) Scanner {
	return &implScanner{
		store:   store,
		adapter: adapter,
		logger:  log,
	}
}
