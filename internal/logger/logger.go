// SPDX-License-Identifier: MIT

// Package logger is the structured logger used by the gridkit command.
// The library packages never log; they return errors.
package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type Options struct {
	Writer io.Writer
	Level  Level
	Format Format
}

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, hopts)
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(w, hopts)
	}
	return &logger{Logger: slog.New(handler)}
}

func (l *logger) With(args ...any) Logger {
	return &logger{Logger: l.Logger.With(args...)}
}
