// Package main is the entry point for the godwm configuration engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/godwm/godwm/internal/config"
	"github.com/godwm/godwm/internal/config/watcher"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	LogLevel   string
	Check      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return 1
	}
	log.SetLevel(level)
	log.SetReportTimestamp(false)

	store := config.NewStore(opts.ConfigPath)
	code := store.Load()
	cfg := store.Current()

	if opts.Check {
		return check(cfg, code)
	}

	// Reload when the active config file changes. Builtin defaults
	// have no file to watch.
	if cfg.Path != "" {
		w := watcher.New(cfg.Path, func() { store.Reload() })
		if err := w.Start(context.Background()); err != nil {
			log.Warn("config watcher unavailable, live reload disabled", "err", err)
		} else {
			defer w.Stop()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	return 0
}

// check prints the resolution verdict and exits nonzero when the
// loaded file had errors.
func check(cfg *config.Config, code int) int {
	switch {
	case code == config.LoadedNone:
		fmt.Println("no configuration file found, builtin defaults in effect")
	case code == config.LoadedClean:
		fmt.Printf("%s: ok (%s)\n", cfg.Path, cfg.Source)
	default:
		fmt.Printf("%s: %d error(s) (%s)\n", cfg.Path, code, cfg.Source)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Check, "check", false, "Validate the configuration and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "godwm - runtime configuration engine for dwm\n\n")
		fmt.Fprintf(os.Stderr, "Usage: godwm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  godwm                       Load config from the standard locations\n")
		fmt.Fprintf(os.Stderr, "  godwm -c ./dwm.conf         Load a specific config file\n")
		fmt.Fprintf(os.Stderr, "  godwm -check                Validate the config and report errors\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("godwm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
