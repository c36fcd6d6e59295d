package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

// NewEngine builds the Engine selected by cfg.Transcriber.Backend.
func NewEngine(ctx context.Context, cfg *config.Config, exec executor.Executor) (Engine, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendWhisperCpp:
		return NewWhisperCpp(cfg.Whisper, cfg.FFmpeg, exec), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAI), nil
	case config.BackendGemini:
		return NewGemini(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Transcriber.Backend)
	}
}
