package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/state"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
	"github.com/nguyentantai21042004/scribe/internal/watcher"
)

type fakeEngine struct {
	calls []string
	err   error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Transcribe(ctx context.Context, path string) (string, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return "", f.err
	}
	return "spoken words", nil
}

func newTestProcessor(t *testing.T, root string, engine *fakeEngine) (Processor, state.Store) {
	t.Helper()
	store := state.NewJSON(filepath.Join(root, "processed_files.json"))
	return New(store, transcriber.New(engine, logger.NewNop(), false), logger.NewNop()), store
}

func TestHandleEventNewFile(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	path := filepath.Join(root, "d.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))

	engine := &fakeEngine{}
	p, store := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: path})

	processed, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, processed.Has(path))

	got, err := os.ReadFile(filepath.Join(root, "d.txt"))
	require.NoError(t, err)
	assert.Equal(t, "spoken words", string(got))
}

func TestHandleEventDirectory(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	dir := filepath.Join(root, "season1.mp4")
	require.NoError(t, os.Mkdir(dir, 0o755))

	engine := &fakeEngine{}
	p, _ := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: dir, IsDir: true})

	assert.Empty(t, engine.calls)
	_, err := os.Stat(filepath.Join(root, "processed_files.json"))
	assert.True(t, os.IsNotExist(err), "no state mutation for directories")
}

func TestHandleEventUnsupported(t *testing.T) {
	root := t.TempDir()
	engine := &fakeEngine{}
	p, _ := newTestProcessor(t, root, engine)

	for _, name := range []string{"notes.txt", "movie.avi", "archive.zip"} {
		p.HandleEvent(context.Background(), watcher.Event{Path: filepath.Join(root, name)})
	}
	assert.Empty(t, engine.calls)
}

func TestHandleEventAlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	path := filepath.Join(root, "e.MKV")

	engine := &fakeEngine{}
	p, store := newTestProcessor(t, root, engine)
	require.NoError(t, store.Save(ctx, state.NewSet(path)))

	p.HandleEvent(ctx, watcher.Event{Path: path})
	p.HandleEvent(ctx, watcher.Event{Path: path})

	assert.Empty(t, engine.calls)
}

func TestHandleEventRepeatedCreation(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	path := filepath.Join(root, "f.m4a")

	engine := &fakeEngine{}
	p, _ := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: path})
	p.HandleEvent(ctx, watcher.Event{Path: path})

	assert.Len(t, engine.calls, 1)
}

func TestHandleEventFailureNotRecorded(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	path := filepath.Join(root, "g.mov")

	engine := &fakeEngine{err: errors.New("decoder crashed")}
	p, store := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: path})

	processed, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, processed.Has(path))

	// Retried on the next event for the same path.
	engine.err = nil
	p.HandleEvent(ctx, watcher.Event{Path: path})
	assert.Len(t, engine.calls, 2)

	processed, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, processed.Has(path))
}

func TestHandleEventSeesExternalStateChanges(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	first := filepath.Join(root, "h.mp3")
	second := filepath.Join(root, "i.mp3")

	engine := &fakeEngine{}
	p, store := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: first})

	// Another writer records second in between events.
	processed, err := store.Load(ctx)
	require.NoError(t, err)
	processed.Add(second)
	require.NoError(t, store.Save(ctx, processed))

	p.HandleEvent(ctx, watcher.Event{Path: second})
	assert.Equal(t, []string{first}, engine.calls)
}

func TestHandleEventCorruptStateAbort(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "processed_files.json"), []byte("nope"), 0o644))

	engine := &fakeEngine{}
	p, _ := newTestProcessor(t, root, engine)

	p.HandleEvent(ctx, watcher.Event{Path: filepath.Join(root, "j.mp4")})
	assert.Empty(t, engine.calls)
}
