package state

import "context"

// Store persists the set of media paths that already have a transcript.
type Store interface {
	// Load returns the persisted set, or an empty set when no record exists.
	// A record that exists but cannot be decoded yields *CorruptStateError.
	Load(ctx context.Context) (Set, error)
	// Save replaces the persisted record with paths.
	Save(ctx context.Context, paths Set) error
	// Reset moves the current record aside so the next Save starts a new one.
	Reset(ctx context.Context) error
	Close() error
}
