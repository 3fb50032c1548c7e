package tess

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog never
// formats messages for it and disabled logging costs one atomic load.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Reads and swaps go through the
// atomic pointer, so SetLogger may race freely with logging goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by tess. The default discards
// everything; pass nil to return to that. Safe to call concurrently
// with logging from any goroutine.
//
// Levels used:
//   - [slog.LevelDebug]: build summaries (stroke outline and fill
//     preparation, with contour and vertex counts)
//   - [slog.LevelWarn]: refinement stopping short of a requested
//     error threshold
//
// Example:
//
//	tess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by tess.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
