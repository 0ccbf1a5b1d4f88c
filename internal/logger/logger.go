package logger

import (
	"io"
	"log/slog"
)

// New builds the process logger. The TUI owns stdout, so main passes
// stderr (or a log file) as w. Dev gets human-readable text at Debug,
// anything else JSON at Info.
func New(env string, w io.Writer) *slog.Logger {
	var h slog.Handler
	if env == "dev" {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(h)
}
