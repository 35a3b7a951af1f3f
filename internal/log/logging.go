// Package log builds padclick's structured logger and raw input tracer.
//
// Without a log file, records below error go to stdout and errors go to
// stderr, so stderr carries only what needs attention. With a log file,
// the console gets everything on stderr and the file gets a full copy.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below debug and enables per-cycle and raw event output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to its slog level. Unknown names select info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options selects the level and the optional output files.
type Options struct {
	Level   string
	File    string
	RawFile string
}

// Logs is the logger pair handed to every command.
type Logs struct {
	*slog.Logger
	Raw   RawLogger
	files []io.Closer
}

// Setup opens the configured outputs. A raw file that cannot be opened is
// reported on the logger and tracing is disabled; a log file that cannot be
// opened is an error.
func Setup(opts Options) (*Logs, error) {
	level := ParseLevel(opts.Level)
	l := &Logs{}

	var handlers []slog.Handler
	if opts.File == "" {
		handlers = append(handlers,
			levelSplit{at: slog.LevelError, below: true, h: slog.NewTextHandler(os.Stdout, handlerOptions(level))},
			levelSplit{at: slog.LevelError, h: slog.NewTextHandler(os.Stderr, handlerOptions(slog.LevelError))},
		)
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.files = append(l.files, f)
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, handlerOptions(level)),
			slog.NewTextHandler(f, handlerOptions(level)),
		)
	}
	l.Logger = slog.New(fanout(handlers))

	switch {
	case opts.RawFile != "":
		f, err := os.OpenFile(opts.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			l.Error("failed to open raw log file", "file", opts.RawFile, "error", err)
			l.Raw = NewRaw(nil)
			break
		}
		l.files = append(l.files, f)
		l.Raw = NewRaw(f)
	case level <= LevelTrace:
		l.Raw = NewRaw(os.Stdout)
	default:
		l.Raw = NewRaw(nil)
	}
	return l, nil
}

// Close closes every file Setup opened.
func (l *Logs) Close() error {
	var errs []error
	for _, f := range l.files {
		errs = append(errs, f.Close())
	}
	l.files = nil
	return errors.Join(errs...)
}

// fanout hands each record to every handler that wants it.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// levelSplit passes the records on one side of a threshold: below it when
// below is set, at or above it otherwise.
type levelSplit struct {
	at    slog.Level
	below bool
	h     slog.Handler
}

func (s levelSplit) pass(l slog.Level) bool {
	return (l < s.at) == s.below
}

func (s levelSplit) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pass(level) && s.h.Enabled(ctx, level)
}

func (s levelSplit) Handle(ctx context.Context, r slog.Record) error {
	if !s.pass(r.Level) {
		return nil
	}
	return s.h.Handle(ctx, r)
}

func (s levelSplit) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelSplit{at: s.at, below: s.below, h: s.h.WithAttrs(attrs)}
}

func (s levelSplit) WithGroup(name string) slog.Handler {
	return levelSplit{at: s.at, below: s.below, h: s.h.WithGroup(name)}
}

// handlerOptions renders LevelTrace as TRACE instead of DEBUG-4.
func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if l, ok := a.Value.Any().(slog.Level); ok && a.Key == slog.LevelKey && l == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
