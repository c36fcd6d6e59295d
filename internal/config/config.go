package config

import "fmt"

const (
	BackendWhisperCpp = "whisper_cpp"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"

	StateJSON   = "json"
	StateSQLite = "sqlite"

	OnCorruptReset = "reset"
	OnCorruptAbort = "abort"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	State       StateConfig       `yaml:"state"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// PathsConfig locates the monitored tree. An empty Root is resolved by the
// caller; a relative StateFile is taken relative to Root.
type PathsConfig struct {
	Root      string `yaml:"root"`
	StateFile string `yaml:"state_file"`
}

type StateConfig struct {
	Backend   string `yaml:"backend"`
	OnCorrupt string `yaml:"on_corrupt"`
}

type TranscriberConfig struct {
	Backend string `yaml:"backend"`
	Docx    bool   `yaml:"docx"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	// TempDir holds per-file scratch audio. Empty means the OS temp dir.
	TempDir    string `yaml:"temp_dir"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"-"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	Prompt  string `yaml:"prompt"`
	BaseURL string `yaml:"base_url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate fills defaults and rejects values no component can serve.
func (c *Config) Validate() error {
	if c.State.Backend == "" {
		c.State.Backend = StateJSON
	}
	if c.State.OnCorrupt == "" {
		c.State.OnCorrupt = OnCorruptReset
	}
	if c.Paths.StateFile == "" {
		if c.State.Backend == StateSQLite {
			c.Paths.StateFile = "processed_files.db"
		} else {
			c.Paths.StateFile = "processed_files.json"
		}
	}
	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisperCpp
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-tiny.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Prompt == "" {
		c.Gemini.Prompt = "Transcribe the speech in this recording verbatim. Reply with the transcript text only."
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	switch c.State.Backend {
	case StateJSON, StateSQLite:
	default:
		return fmt.Errorf("state.backend %q is not supported", c.State.Backend)
	}
	switch c.State.OnCorrupt {
	case OnCorruptReset, OnCorruptAbort:
	default:
		return fmt.Errorf("state.on_corrupt %q is not supported", c.State.OnCorrupt)
	}
	switch c.Transcriber.Backend {
	case BackendWhisperCpp, BackendOpenAI, BackendGemini:
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive")
	}

	return nil
}

// RequireCredentials checks that the selected remote backend has its API key.
func (c *Config) RequireCredentials() error {
	switch c.Transcriber.Backend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
	case BackendGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini backend")
		}
	}
	return nil
}
