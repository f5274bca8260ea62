// Package main is the entry point for the terminput event viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/terminput/internal/app"
	"github.com/dshills/terminput/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.transcript != "" {
		cfg.Transcript = flags.transcript
	}
	if flags.noMouse {
		cfg.Mouse = false
	}
	if flags.quitKey != "" {
		cfg.QuitKey = flags.quitKey
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.LogLevel),
		Output: os.Stderr,
		Prefix: "terminput",
	})

	a := app.New(cfg, logger, os.Stdin, os.Stdout)

	if flags.replayPath != "" {
		if err := a.Replay(flags.replayPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Handle signals for graceful shutdown. Raw mode suppresses the
	// usual Ctrl+C signal; this covers SIGTERM and non-raw runs.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type cliFlags struct {
	configPath string
	transcript string
	replayPath string
	logLevel   string
	quitKey    string
	noMouse    bool
}

func parseFlags() cliFlags {
	var flags cliFlags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&flags.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&flags.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&flags.transcript, "capture", "", "Append decoded events to a JSONL transcript")
	flag.StringVar(&flags.replayPath, "replay", "", "Print events from a JSONL transcript instead of reading input")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&flags.quitKey, "quit", "", "Quit key specification, e.g. C-q or Ctrl+D")
	flag.BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse reporting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "terminput - terminal input event viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: terminput [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  terminput                        Print decoded events until the quit key\n")
		fmt.Fprintf(os.Stderr, "  terminput -capture keys.jsonl    Record events while printing them\n")
		fmt.Fprintf(os.Stderr, "  terminput -replay keys.jsonl     Print a recorded session\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("terminput %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return flags
}
