package logging

import (
	"log/slog"
	"os"
	"strings"
)

type LoggerConfig struct {
	Level  string `yaml:"level"`
	IsJSON bool   `yaml:"is_json"`
}

// InitLogger configures the process-wide logger. Log output goes to stderr so
// stdout stays available as the word sink.
func InitLogger(cfg *LoggerConfig, attrs ...slog.Attr) {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var h slog.Handler

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(h.WithAttrs(attrs)))
}
