package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/internal/processor"
	"github.com/nguyentantai21042004/scribe/internal/scanner"
	"github.com/nguyentantai21042004/scribe/internal/state"
	"github.com/nguyentantai21042004/scribe/internal/transcriber"
	"github.com/nguyentantai21042004/scribe/internal/watcher"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
)

type options struct {
	configPath string
	scanOnly   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "scribe [directory]",
		Short: "Transcribe audio and video files as they appear in a directory tree",
		Long: `Transcribe audio and video files as they appear in a directory tree.

- Scans the directory once for media files without a recorded transcript
- Then watches it and transcribes every new .mp3/.wav/.aac/.m4a/.mp4/.mkv/.mov/.flv
- Each transcript is written next to its media file with a .txt extension
- Processed files are recorded in processed_files.json inside the directory`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.Context(), opts, dir)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to the YAML config file (optional)")
	cmd.Flags().BoolVar(&opts.scanOnly, "scan-only", false, "run the initial scan and exit without watching")

	return cmd
}

func run(ctx context.Context, opts *options, dir string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.LoadEnv(".env", ".env.local"); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	root, err := resolveRoot(dir, cfg.Paths.Root)
	if err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := state.New(cfg, statePath(root, cfg.Paths.StateFile), log)
	if err != nil {
		return err
	}
	defer store.Close()

	engine, err := transcriber.NewEngine(ctx, cfg, executor.New())
	if err != nil {
		return err
	}
	adapter := transcriber.New(engine, log, cfg.Transcriber.Docx)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Media Transcription Watcher")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Monitoring directory: %s", root)
	log.Info(ctx, "Engine: %s", engine.Name())
	log.Info(ctx, "State: %s (%s)", statePath(root, cfg.Paths.StateFile), cfg.State.Backend)
	log.Info(ctx, "========================================")

	if _, err := scanner.New(store, adapter, log).Scan(ctx, root); err != nil {
		if state.IsCorrupt(err) {
			return err
		}
		log.Error(ctx, "Initial scan failed: %v", err)
	}

	if opts.scanOnly || ctx.Err() != nil {
		return nil
	}

	proc := processor.New(store, adapter, log)
	w, err := watcher.New(root, proc.HandleEvent, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && ctx.Err() == nil {
			errChan <- err
		}
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		log.Info(ctx, "Stopped monitoring.")
		return nil
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}
}

// resolveRoot picks the monitored directory: the CLI argument, then the
// config file, then the directory holding the executable.
func resolveRoot(arg, configured string) (string, error) {
	root := arg
	if root == "" {
		root = configured
	}
	if root == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		root = filepath.Dir(exe)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("monitored directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("monitored path %s is not a directory", root)
	}
	return root, nil
}

func statePath(root, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(root, file)
}
