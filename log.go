package oit

import (
	"context"
	"golang.org/x/exp/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so disabled
// logging skips record formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger routes the package's diagnostics to l. The package is silent by
// default; passing nil silences it again. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger the package currently writes to.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
