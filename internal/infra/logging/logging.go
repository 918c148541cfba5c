// Where: internal/infra/logging/logging.go
// What: Diagnostic logger setup.
// Why: Keep user-facing console output separate from -v/-vv diagnostics on stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level maps a -v count to a slog level: warnings by default, info at -v, debug at -vv.
func Level(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Setup installs a text handler on w as the default logger.
func Setup(w io.Writer, verbosity int) {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(verbosity)})
	slog.SetDefault(slog.New(handler))
}
