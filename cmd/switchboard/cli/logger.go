// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// EnvLogLevel names the environment variable that sets the CLI log
// level ("debug", "info", "warn", "error").
const EnvLogLevel = "SWITCHBOARD_LOG_LEVEL"

// NewCommandLogger creates a structured logger for CLI command operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable output.
// When stderr is piped or redirected (CI, scripts), uses slog.JSONHandler
// for machine-parseable output.
func NewCommandLogger() *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), os.Getenv(EnvLogLevel))
}

func newLogger(w io.Writer, terminal bool, level string) *slog.Logger {
	options := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if terminal {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// parseLevel returns the slog level named by text, or Info when text
// is empty or unrecognized.
func parseLevel(text string) slog.Level {
	var level slog.Level
	if text == "" || level.UnmarshalText([]byte(text)) != nil {
		return slog.LevelInfo
	}
	return level
}
