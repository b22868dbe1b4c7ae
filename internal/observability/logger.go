package observability

import (
	"io"
	"log/slog"
	"strings"

	"github.com/couchcryptid/obs-shots2cnv/internal/config"
)

// NewLogger builds the process logger from the configured level and format.
// It accepts the same level and format vocabulary as the shared
// storm-data-shared/observability.NewLogger, but writes to w (stderr in
// production) and leaves the slog default alone: stdout carries the summary
// and station tables.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
