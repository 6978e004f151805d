package app

import (
	"log/slog"
	"os"
	"strings"

	"freight-booking/internal/config"
	"freight-booking/internal/logx"
)

// NewLogger builds the process logger: JSON to stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	return logx.NewSlogAdapter(base.With(slog.String("service", "freight-booking")))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
