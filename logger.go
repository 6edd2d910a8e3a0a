package colorkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled is false, so slog never
// evaluates the arguments of a colorkit log call until a logger is set.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discardHandler{})

// activeLogger is read by pool workers while SetLogger may run on another
// goroutine.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger sends colorkit diagnostics to l. The package starts silent and
// a nil l makes it silent again.
//
// Synthesis progress, named-color searches and palette cache misses are
// logged at Debug. Loading a palette file is Info. A Backdrop render that
// was replaced before it finished is reported at Warn.
//
//	colorkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
