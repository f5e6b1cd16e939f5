// Package logging configures the structured logger used across the explorer.
//
// Prompts and statistics own the terminal, so logs are discarded unless a
// log file is given.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level
// ("debug", "info", "warn" or "error"; anything else means info).
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           parseLevel(level),
		Prefix:          "bikeshare",
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "error")
}

// Setup opens filename for appending and returns a logger writing to it
// together with a cleanup func that closes the file. An empty filename
// yields a discarding logger and a no-op cleanup.
func Setup(filename, level string) (*log.Logger, func(), error) {
	if filename == "" {
		return Discard(), func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(f, level)
	logger.Info("session started")

	cleanup := func() {
		logger.Info("session finished")
		_ = f.Close()
	}
	return logger, cleanup, nil
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
