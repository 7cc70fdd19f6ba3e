package render

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all log records. It is the default handler so that
// logging costs nothing until a caller opts in with SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs(_ []slog.Attr) slog.Handler     { return h }
func (h nopHandler) WithGroup(_ string) slog.Handler          { return h }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger installs l as the logger used by this module and its
// subpackages (backend/*, cmdcontext, passes, pipeline, upscaler). Passing
// nil restores the no-op default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the currently installed logger.
func Logger() *slog.Logger {
	return logger.Load()
}
