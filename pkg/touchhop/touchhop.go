// Package touchhop routes touch and pointer input from heterogeneous native
// sources into one event model and derives enter/exit ("boundary hop")
// transitions for views that do not report them natively.
//
// A Service holds the registry of attached views and the table of which
// view owns each active pointer. Platform bindings under platform/ translate
// native callbacks into Press, Move, Release and Cancel calls; the Service
// hit tests, emits Entered/Exited as pointers cross view bounds, honours the
// per-view capture flag and delivers a TouchEvent to the view's Handler.
package touchhop

import (
	"log/slog"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first logger is used to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ParseLogLevel maps a level name such as "debug" or "warn" to a
// slog.Level. Unknown names map to info.
func ParseLogLevel(raw string) slog.Level {
	return internal.ParseLevel(raw)
}

// SetRoutingLogLevel sets the level of the logger a Service uses when no
// logger is given in Options. Debug shows every attach, detach and
// boundary hop.
func SetRoutingLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// CloseLogger flushes and closes the log file, if any.
func CloseLogger() {
	internal.CloseLogger()
}
