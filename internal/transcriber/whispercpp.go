package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type whisperCppEngine struct {
	whisper  config.WhisperConfig
	ffmpeg   string
	executor executor.Executor
	tempDir  string
}

// NewWhisperCpp returns an Engine that converts media to 16kHz mono WAV with
// ffmpeg and runs the whisper.cpp CLI on it.
func NewWhisperCpp(whisper config.WhisperConfig, ffmpeg config.FFmpegConfig, exec executor.Executor) Engine {
	return &whisperCppEngine{
		whisper:  whisper,
		ffmpeg:   ffmpeg.BinaryPath,
		executor: exec,
		tempDir:  whisper.TempDir,
	}
}

func (e *whisperCppEngine) Name() string {
	return config.BackendWhisperCpp
}

func (e *whisperCppEngine) Transcribe(ctx context.Context, path string) (string, error) {
	// Scratch files stay out of the watched tree.
	workDir, err := os.MkdirTemp(e.tempDir, "scribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, err := e.extractAudio(ctx, path, workDir)
	if err != nil {
		return "", err
	}

	return e.runWhisper(ctx, audioPath, filepath.Join(workDir, "transcript"))
}

// extractAudio converts path to the 16kHz mono PCM WAV whisper.cpp expects.
func (e *whisperCppEngine) extractAudio(ctx context.Context, path, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	args := []string{
		"-nostdin",
		"-i", path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return audioPath, nil
}

// runWhisper writes outputPrefix.txt and returns its trimmed content.
func (e *whisperCppEngine) runWhisper(ctx context.Context, audioPath, outputPrefix string) (string, error) {
	args := []string{
		"-m", e.whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-np",
		"-l", e.whisper.Language,
		"-t", strconv.Itoa(e.whisper.Threads),
		"--output-file", outputPrefix,
	}
	if e.whisper.Prompt != "" {
		args = append(args, "--prompt", e.whisper.Prompt)
	}

	if _, err := e.executor.Execute(ctx, e.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
