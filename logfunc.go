package deco

import (
	"log/slog"
	"sync/atomic"
)

// LogFunc is the sink wrappers write human-readable log lines to. Any
// function taking a single formatted string will do: a test recorder,
// a logger method, a console writer.
type LogFunc func(msg string)

// The process-wide default sink, resolved once at startup and
// replaceable via SetDefaultLogFunc. Wrappers capture it at decoration
// time, so swapping it affects subsequently decorated functions only.
var defaultLogFn atomic.Value // LogFunc

// DefaultLogFunc returns the process-wide default log sink. Unless
// replaced it forwards to log/slog at info level.
func DefaultLogFunc() LogFunc {
	if fn, ok := defaultLogFn.Load().(LogFunc); ok && fn != nil {
		return fn
	}
	return slogSink
}

// SetDefaultLogFunc replaces the process-wide default log sink.
// Passing nil restores the slog-backed default.
func SetDefaultLogFunc(fn LogFunc) {
	if fn == nil {
		fn = slogSink
	}
	defaultLogFn.Store(fn)
}

func slogSink(msg string) {
	slog.Info(msg)
}
