package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/tube-clipper/internal/clipboard"
	"github.com/handiism/tube-clipper/internal/config"
	"github.com/handiism/tube-clipper/internal/monitor"
	"github.com/handiism/tube-clipper/internal/notify"
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file (JSON or YAML)")
		outputFlag  = flag.String("output", "", "Download directory (overrides config)")
		testFlag    = flag.Bool("test", false, "Start in test mode (nothing is written to disk)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
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

	// Apply flags
	if *outputFlag != "" {
		settings.DownloadDirectory = *outputFlag
	}
	if *testFlag {
		settings.StartInTestMode = true
	}

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

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

	notifier := notify.FromSettings(settings, logger)
	loop.OnEvent(func(event monitor.Event) {
		if event.Kind == monitor.EventRecorded {
			_ = notifier.Notify(event.Notification.Title, event.Notification.Message)
		}
		printEvent(event, *verboseFlag)
	})

	fmt.Println("🎵 Tube Clipper")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Saving audio to %s\n", loop.DownloadDirectory())
	if loop.TestMode() {
		fmt.Println("Test mode: nothing will be written")
	}
	fmt.Println("Copy a YouTube link to start. Press Ctrl+C to quit.")
	fmt.Println()

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run stops the loop (Quit) once ctx is cancelled.
	if err := loop.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	notify.Close(notifier)

	entries := loop.Entries()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Stopped. %d video(s) recorded this session.\n", len(entries))
}

// printEvent writes a monitor event to stdout in the style of a log line.
func printEvent(event monitor.Event, verbose bool) {
	switch event.Kind {
	case monitor.EventProgress:
		return
	case monitor.EventStateChanged:
		if !verbose || event.State == monitor.StateStopped {
			return
		}
	}
	if event.Level == monitor.LevelVerbose && !verbose {
		return
	}

	message := event.Message
	if event.Kind == monitor.EventStateChanged && event.URL != "" {
		message = fmt.Sprintf("%s %s", event.State, event.URL)
	}

	prefix := ""
	switch event.Level {
	case monitor.LevelError:
		prefix = "❌ "
	case monitor.LevelWarning:
		prefix = "⚠️  "
	case monitor.LevelSuccess:
		prefix = "✅ "
	case monitor.LevelInfo:
		prefix = "ℹ️  "
	default:
		prefix = "   "
	}

	fmt.Println(prefix + message)
}
