// Package logging wires up the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath is where kennel writes its JSONL log unless overridden.
const DefaultPath = "logs/kennel.log"

// Setup configures slog to write JSONL to a log file, and to stderr as
// well unless quiet is set. Record emission itself goes to stdout, so
// logs never mix with the dog output lines either way.
// Returns the logger and a cleanup function that closes the file.
func Setup(logFile string, level slog.Level, quiet bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if !quiet {
		w = io.MultiWriter(os.Stderr, f)
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))

	cleanup := func() {
		_ = f.Close()
	}

	return logger, cleanup, nil
}
