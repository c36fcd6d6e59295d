package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nguyentantai21042004/scribe/internal/fsx"
)

type jsonStore struct {
	path string
}

// NewJSON returns a Store keeping the set as a JSON array of strings in path.
func NewJSON(path string) Store {
	return &jsonStore{path: path}
}

func (s *jsonStore) Load(ctx context.Context) (Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSet(), nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, &CorruptStateError{Path: s.path, Err: err}
	}
	return NewSet(paths...), nil
}

func (s *jsonStore) Save(ctx context.Context, paths Set) error {
	data, err := json.Marshal(paths.Sorted())
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := fsx.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *jsonStore) Reset(ctx context.Context) error {
	return moveAside(s.path)
}

func (s *jsonStore) Close() error {
	return nil
}
