package nine

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so hot paths
// such as Lock and SetRenderState never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Devices may log from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for nine and all its sub-packages.
// By default, nine produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by nine:
//   - [slog.LevelDebug]: per-call diagnostics (rejected arguments, map requests)
//   - [slog.LevelInfo]: lifecycle events (device created, driver selected)
//   - [slog.LevelWarn]: compatibility fallbacks and unsupported legacy features
//   - [slog.LevelError]: modern driver failures, always with the driver code
//
// Example:
//
//	// Enable info-level logging to stderr:
//	nine.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	nine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The backend packages log through it
// as well.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
