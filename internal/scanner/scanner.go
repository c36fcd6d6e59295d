package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/nguyentantai21042004/scribe/internal/media"
)

// Scan loads the processed set, transcribes every supported file under root
// that is not in it, and saves the set once at the end. Only successful
// transcriptions are recorded; failures are retried on the next scan.
func (s *implScanner) Scan(ctx context.Context, root string) (Summary, error) {
	var summary Summary

	root, err := filepath.Abs(root)
	if err != nil {
		return summary, fmt.Errorf("resolve root: %w", err)
	}

	processed, err := s.store.Load(ctx)
	if err != nil {
		return summary, fmt.Errorf("load processed files: %w", err)
	}

	candidates, err := s.findMedia(ctx, root)
	if err != nil {
		return summary, fmt.Errorf("walk %s: %w", root, err)
	}

	pending := processed.Missing(candidates)
	summary.Candidates = len(candidates)
	summary.New = len(pending)
	s.logger.Info(ctx, "Found %d media files, %d new", summary.Candidates, summary.New)

	for _, path := range pending {
		if ctx.Err() != nil {
			s.logger.Warn(ctx, "Scan interrupted, %d files left", summary.New-summary.Transcribed-summary.Failed)
			break
		}

		if result := s.adapter.Transcribe(ctx, path); result.Done() {
			processed.Add(path)
			summary.Transcribed++
		} else {
			summary.Failed++
		}
	}

	// Saved even when interrupted so finished work is not redone. A cancelled
	// ctx must not abort the save itself.
	if err := s.store.Save(context.WithoutCancel(ctx), processed); err != nil {
		return summary, fmt.Errorf("save processed files: %w", err)
	}

	s.logger.Info(ctx, "Scan complete: %d transcribed, %d failed", summary.Transcribed, summary.Failed)
	return summary, nil
}

// findMedia returns the absolute paths of supported files under root.
// Unreadable directories are skipped with a warning.
func (s *implScanner) findMedia(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Warn(ctx, "Skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			return nil
		}
		if media.IsSupported(path) {
			files = append(files, path)
		} else {
			s.logger.Debug(ctx, "Ignoring: %s", path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
