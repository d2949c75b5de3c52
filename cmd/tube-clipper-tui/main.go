package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/tube-clipper/internal/clipboard"
	"github.com/handiism/tube-clipper/internal/config"
	ioutils "github.com/handiism/tube-clipper/internal/io"
	"github.com/handiism/tube-clipper/internal/monitor"
	"github.com/handiism/tube-clipper/internal/notify"
	"github.com/handiism/tube-clipper/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file (JSON or YAML)")
		outputFlag  = flag.String("output", "", "Download directory (overrides config)")
		testFlag    = flag.Bool("test", false, "Start in test mode (nothing is written to disk)")
		verboseFlag = flag.Bool("verbose", false, "Write debug logs")
	)

	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if *outputFlag != "" {
		settings.DownloadDirectory = *outputFlag
	}
	if *testFlag {
		settings.StartInTestMode = true
	}

	// The terminal belongs to the UI, so logs go to a file.
	logger, closeLog, err := openLog(settings.LogFile, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	source, err := clipboard.NewSystem(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loop, err := monitor.NewFromSettings(settings, source, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	notifier := notify.FromSettings(settings, logger)
	err = tui.Run(ctx, loop, notifier)
	notify.Close(notifier)
	if err != nil {
		logger.Error("tui exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
