/*
PURPOSE:
  Provides a structured logger for append-results.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Quiet by default; failures are reported by main, not the logger.

  Implementation-discovered:
  - Logs go to stderr so stdout stays clean for scripting.
  - Level comes from config or --verbose.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

IMPLEMENTATION RULES:
  - Use `log/slog`.

USAGE:
  output.Logger.Info("message", "key", "value")
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, slog.LevelInfo)
}

// NewLogger builds a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
