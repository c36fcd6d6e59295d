package transcriber

import (
	"context"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/fsx"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/media"
)

type implAdapter struct {
	engine Engine
	logger logger.Logger
	docx   bool
}

// New creates an Adapter around engine. With docx set, a .docx copy of each
// transcript is written alongside the .txt file.
func New(engine Engine, log logger.Logger, docx bool) Adapter {
	return &implAdapter{
		engine: engine,
		logger: log,
		docx:   docx,
	}
}

func (a *implAdapter) Transcribe(ctx context.Context, path string) Result {
	kind := media.Classify(path)
	if kind == media.Unsupported {
		return Result{Path: path, Status: StatusSkipped}
	}

	name := filepath.Base(path)
	start := time.Now()
	a.logger.Info(ctx, "Transcribing %s: %s (engine: %s)", kind, name, a.engine.Name())

	text, err := a.engine.Transcribe(ctx, path)
	if err != nil {
		category := CategoryEngine
		if ctx.Err() != nil {
			category = CategoryCanceled
		}
		return a.fail(ctx, path, category, err)
	}

	txtPath := media.TranscriptPath(path, media.TranscriptExt)
	if err := fsx.WriteFileAtomic(txtPath, []byte(text), 0o644); err != nil {
		return a.fail(ctx, path, CategoryWrite, err)
	}

	if a.docx {
		docxPath := media.TranscriptPath(path, docxExt)
		if err := writeDocx(name, text, docxPath); err != nil {
			a.logger.Warn(ctx, "Failed to write %s: %v", filepath.Base(docxPath), err)
		}
	}

	a.logger.Info(ctx, "Saved transcript: %s (%s)", txtPath, time.Since(start).Round(time.Millisecond))
	return Result{
		Path:           path,
		Status:         StatusDone,
		Text:           text,
		TranscriptPath: txtPath,
	}
}

func (a *implAdapter) fail(ctx context.Context, path string, category Category, err error) Result {
	a.logger.Error(ctx, "Error processing %s (%s): %v", filepath.Base(path), category, err)
	return Result{
		Path:    path,
		Status:  StatusFailed,
		Failure: &Failure{Category: category, Message: err.Error()},
	}
}
