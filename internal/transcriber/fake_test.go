package transcriber

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
)

type fakeEngine struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Transcribe(ctx context.Context, path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	if f.fail[filepath.Base(path)] {
		return "", errors.New("model error")
	}
	return "transcript of " + filepath.Base(path), nil
}
