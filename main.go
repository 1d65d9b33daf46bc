package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/kennel/internal/animal"
	"github.com/olehluchkiv/kennel/internal/logging"
	"github.com/olehluchkiv/kennel/internal/roster"
	"github.com/olehluchkiv/kennel/internal/server"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "kennel Rex -roster pack.json". We reorder args so flags come
	// first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("kennel", flag.ExitOnError)
	rosterFile := fs.String("roster", "", "JSON roster file to load dogs from")
	serve := fs.Bool("serve", false, "serve the roster over HTTP after emitting")
	port := fs.Int("port", 8080, "HTTP server port (with -serve)")
	quiet := fs.Bool("quiet", false, "write logs only to the log file, not stderr")
	logFile := fs.String("log-file", logging.DefaultPath, "log file path")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	// Collect any remaining args from flag parsing + our positional args
	positional = append(positional, fs.Args()...)

	if len(positional) == 0 && *rosterFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: kennel [flags] <name>...")
		fs.PrintDefaults()
		os.Exit(1)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level, *quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Step 1: Collect dogs — roster file first, then positional names.
	var dogs []*animal.Dog
	if *rosterFile != "" {
		dogs, err = roster.Load(*rosterFile)
		if err != nil {
			logger.Error("failed to load roster", "file", *rosterFile, "error", err)
			fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
			os.Exit(1)
		}
		logger.Info("roster loaded", "file", *rosterFile, "dogs", len(dogs))
	}
	for _, name := range positional {
		dogs = append(dogs, animal.NewDog(name))
	}
	logger.Debug("dogs constructed", "names", roster.Names(dogs))

	// Step 2: Emit the speak and summary lines.
	roster.EmitAll(os.Stdout, dogs)

	// Step 3: Optionally serve the roster.
	if *serve {
		if err := server.Serve(ctx, dogs, *port, logger); err != nil {
			logger.Error("server error", "error", err)
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional name arguments).
// Flags that take a value (e.g., -roster pack.json) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-roster": true, "-port": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
