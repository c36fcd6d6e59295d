package state

import (
	"fmt"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

// New builds the Store selected by cfg.State for the record at path.
func New(cfg *config.Config, path string, log logger.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.State.Backend {
	case config.StateJSON:
		store = NewJSON(path)
	case config.StateSQLite:
		store, err = NewSQLite(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}

	if cfg.State.OnCorrupt == config.OnCorruptReset {
		store = WithResetOnCorrupt(store, log)
	}
	return store, nil
}
