package processor

import (
	"context"
	"path/filepath"

	"github.com/nguyentantai21042004/scribe/internal/media"
	"github.com/nguyentantai21042004/scribe/internal/watcher"
)

// HandleEvent transcribes a newly created media file unless it is already
// recorded. The processed set is reloaded for every event so that changes made
// by a scan or another run are seen, and saved right after each success.
func (p *implProcessor) HandleEvent(ctx context.Context, ev watcher.Event) {
	if ev.IsDir {
		return
	}
	if !media.IsSupported(ev.Path) {
		p.logger.Debug(ctx, "Ignoring non-media file: %s", ev.Path)
		return
	}

	p.logger.Info(ctx, "New file detected: %s", filepath.Base(ev.Path))

	processed, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Error(ctx, "Failed to load processed files, skipping %s: %v", ev.Path, err)
		return
	}
	if processed.Has(ev.Path) {
		p.logger.Debug(ctx, "Already processed: %s", ev.Path)
		return
	}

	if result := p.adapter.Transcribe(ctx, ev.Path); !result.Done() {
		return
	}

	processed.Add(ev.Path)
	if err := p.store.Save(context.WithoutCancel(ctx), processed); err != nil {
		p.logger.Error(ctx, "Failed to save processed files after %s: %v", ev.Path, err)
	}
}
