// Package logging builds the slog loggers shared by the GUI and the batch
// tool: a console handler plus an optional rotating file sink.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	File   string // optional path; enables a rotated JSON log file
	Out    io.Writer
}

// NewLogger returns a structured slog.Logger for opts.
func NewLogger(opts Options) *slog.Logger {
	lvl := ParseLevel(opts.Level)
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(out, hopts)
	} else {
		console = slog.NewTextHandler(out, hopts)
	}
	if strings.TrimSpace(opts.File) == "" {
		return slog.New(console)
	}
	w := &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 3, MaxAge: 28, Compress: true}
	return slog.New(fanout{console, slog.NewJSONHandler(w, hopts)})
}

// WithComponent returns l annotated with a component attribute.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", name))
}

// ParseLevel converts a level name to slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler.
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
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
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
