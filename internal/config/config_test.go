package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "sqlite backend",
			config: Config{
				State: StateConfig{Backend: StateSQLite, OnCorrupt: OnCorruptAbort},
			},
			wantErr: false,
		},
		{
			name: "unknown state backend",
			config: Config{
				State: StateConfig{Backend: "redis"},
			},
			wantErr: true,
		},
		{
			name: "unknown corrupt policy",
			config: Config{
				State: StateConfig{OnCorrupt: "ignore"},
			},
			wantErr: true,
		},
		{
			name: "unknown transcriber backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "vosk"},
			},
			wantErr: true,
		},
		{
			name: "negative threads",
			config: Config{
				Whisper: WhisperConfig{Threads: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, StateJSON, cfg.State.Backend)
	assert.Equal(t, OnCorruptReset, cfg.State.OnCorrupt)
	assert.Equal(t, "processed_files.json", cfg.Paths.StateFile)
	assert.Equal(t, BackendWhisperCpp, cfg.Transcriber.Backend)
	assert.Equal(t, "ffmpeg", cfg.FFmpeg.BinaryPath)
	assert.Equal(t, 4, cfg.Whisper.Threads)
	assert.Equal(t, "info", cfg.Logging.Level)

	sqlite := &Config{State: StateConfig{Backend: StateSQLite}}
	require.NoError(t, sqlite.Validate())
	assert.Equal(t, "processed_files.db", sqlite.Paths.StateFile)
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", " sk-test ")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  root: "data/media"

transcriber:
  backend: "openai"
  docx: true

whisper:
  model_path: "models/test.bin"
  language: "en"
  temp_dir: "/var/tmp/scribe"

logging:
  level: "debug"
  format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/media", cfg.Paths.Root)
	assert.Equal(t, BackendOpenAI, cfg.Transcriber.Backend)
	assert.True(t, cfg.Transcriber.Docx)
	assert.Equal(t, "models/test.bin", cfg.Whisper.ModelPath)
	assert.Equal(t, "whisper-cli", cfg.Whisper.BinaryPath)
	assert.Equal(t, "/var/tmp/scribe", cfg.Whisper.TempDir)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.NoError(t, cfg.RequireCredentials())
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendWhisperCpp, cfg.Transcriber.Backend)
}

func TestRequireCredentials(t *testing.T) {
	cfg := &Config{Transcriber: TranscriberConfig{Backend: BackendGemini}}
	require.NoError(t, cfg.Validate())
	assert.Error(t, cfg.RequireCredentials())

	cfg.Gemini.APIKey = "AIza-test"
	assert.NoError(t, cfg.RequireCredentials())

	local := Default()
	assert.NoError(t, local.RequireCredentials())
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCRIBE_TEST_VALUE=from-dotenv\n"), 0644))
	t.Setenv("SCRIBE_TEST_VALUE", "")
	os.Unsetenv("SCRIBE_TEST_VALUE")

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env"), path))
	assert.Equal(t, "from-dotenv", os.Getenv("SCRIBE_TEST_VALUE"))
}
