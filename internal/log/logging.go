// Package log builds the loggers the keywire CLI runs with: a configured
// slog.Logger for diagnostics and a RawLogger for capturing wire bytes.
//
// Without a log file, non-error records go to stdout and errors to stderr,
// so decoded output piped from stdout stays clean of error noise.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below Debug and carries the per-byte wire traffic. At
// this level every byte fed to the pipeline produces a record.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name from configuration to its slog level.
// Unknown names fall back to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Trace logs msg at the wire traffic level.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// replaceLevel renders LevelTrace as TRACE; slog would otherwise print its
// offset from Debug as DEBUG-4.
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lv, ok := a.Value.Any().(slog.Level); ok && lv == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return MultiHandler{hs: out}
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return MultiHandler{hs: out}
}

// LevelFilter delegates to an underlying handler but filters which levels
// are passed to it using the provided predicate.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	if !f.pass(level) {
		return false
	}
	return f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	})
}

// SetupLogger builds the process logger. With logFile set, records go to
// that file and to stderr; without it, they split between stdout and
// stderr by severity. The returned closers own any opened file.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)

	var handlers []slog.Handler
	var closeFiles []io.Closer

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers,
			textHandler(f, level),
			textHandler(os.Stderr, level),
		)
	} else {
		belowError := func(l slog.Level) bool { return l < slog.LevelError }
		atError := func(l slog.Level) bool { return l >= slog.LevelError }
		handlers = append(handlers,
			LevelFilter{pass: belowError, h: textHandler(os.Stdout, level)},
			LevelFilter{pass: atError, h: textHandler(os.Stderr, slog.LevelError)},
		)
	}

	return slog.New(MultiHandler{hs: handlers}), closeFiles, nil
}
