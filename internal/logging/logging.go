package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the application logger and sets it as the default.
// format is "json" for production or "text" (the default) for development.
func New(format, level string) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, format, level))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, format, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts)
	default:
		opts.AddSource = true // Adds source file and line number
		return slog.NewTextHandler(w, opts)
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
