package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/media"
)

type geminiEngine struct {
	client *genai.Client
	model  string
	prompt string
}

// NewGemini returns an Engine that sends the media bytes inline to Gemini
// with a transcription prompt. Gemini caps inline requests at about 20MB, so
// long recordings fail and are retried on every pass.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (Engine, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiEngine{
		client: client,
		model:  cfg.Model,
		prompt: cfg.Prompt,
	}, nil
}

func (e *geminiEngine) Name() string {
	return config.BackendGemini
}

func (e *geminiEngine) Transcribe(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read media: %w", err)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: e.prompt},
			{InlineData: &genai.Blob{Data: data, MIMEType: media.MIMEType(path)}},
		},
	}}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return strings.TrimSpace(text.String()), nil
}
