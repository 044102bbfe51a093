package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger. Production emits JSON lines for log
// shippers; other environments emit human-readable text. The minimum level
// comes from LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(environment string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(os.Getenv("LOG_LEVEL"))}
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
