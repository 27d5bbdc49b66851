package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init configures the global JSON logger. Debug output is only enabled for
// local development.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
