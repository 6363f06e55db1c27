package app

import (
	"log/slog"
	"os"
)

// NewLogger picks the slog handler from the environment:
// prod gets JSON at INFO, everything else text at DEBUG.
func NewLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == "prod" {
		opts.Level = slog.LevelInfo
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
