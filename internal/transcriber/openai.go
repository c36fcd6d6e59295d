package transcriber

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/scribe/internal/config"
)

type openAIEngine struct {
	client   *openai.Client
	model    string
	language string
}

// NewOpenAI returns an Engine backed by the OpenAI audio transcription API.
func NewOpenAI(cfg config.OpenAIConfig) Engine {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &openAIEngine{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    model,
		language: cfg.Language,
	}
}

func (e *openAIEngine) Name() string {
	return config.BackendOpenAI
}

func (e *openAIEngine) Transcribe(ctx context.Context, path string) (string, error) {
	req := openai.AudioRequest{
		Model:    e.model,
		FilePath: path,
		Language: e.language,
		Format:   openai.AudioResponseFormatJSON,
	}

	resp, err := e.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return resp.Text, nil
}
