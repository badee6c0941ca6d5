// Package logging constructs the process-wide structured logger. Handlers
// and commands receive a *slog.Logger; no package keeps a logging singleton.
package logging

import (
	"log/slog"
	"os"
)

// New builds a logger appropriate for the given environment: human-readable
// text with debug detail in development, JSON at info level otherwise.
func New(env string) *slog.Logger {
	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}
