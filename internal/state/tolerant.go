package state

import (
	"context"

	"github.com/nguyentantai21042004/scribe/internal/logger"
)

type tolerantStore struct {
	Store
	logger logger.Logger
}

// WithResetOnCorrupt wraps store so that a corrupt record loads as an empty
// set with a warning. The bad record is moved aside so the next Save can
// write a fresh one.
func WithResetOnCorrupt(store Store, log logger.Logger) Store {
	return &tolerantStore{Store: store, logger: log}
}

func (s *tolerantStore) Load(ctx context.Context) (Set, error) {
	paths, err := s.Store.Load(ctx)
	if IsCorrupt(err) {
		s.logger.Warn(ctx, "Ignoring unreadable processed-files record, starting empty: %v", err)
		if err := s.Store.Reset(ctx); err != nil {
			s.logger.Error(ctx, "Failed to move aside processed-files record: %v", err)
		}
		return NewSet(), nil
	}
	return paths, err
}
