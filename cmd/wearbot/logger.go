package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	// Packages
	logger "github.com/mutablelogic/go-server/pkg/logger"
	wearbot "github.com/mutablelogic/go-wearbot"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Logger writes structured log lines and wraps HTTP handlers with
// request logging
type Logger struct {
	*slog.Logger
	level slog.Level
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

var _ wearbot.Logger = (*Logger)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewLogger returns a logger which writes coloured lines to a terminal, or
// JSON lines otherwise. Debug messages are only written when debug is true.
func NewLogger(w io.Writer, debug bool) *Logger {
	level := new(slog.LevelVar)
	level.Set(logger.LevelInfo)
	if debug {
		level.Set(logger.LevelDebug)
	}

	var handler slog.Handler
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = logger.NewTermHandler(w, level)
	} else {
		handler = logger.NewLevelHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logger.LevelTrace}), level)
	}
	return &Logger{
		Logger: slog.New(handler),
		level:  logger.LevelInfo,
	}
}

// WithLevel returns a logger which emits Print and Printf at the given level
func (l *Logger) WithLevel(level slog.Level) *Logger {
	return &Logger{Logger: l.Logger, level: level}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (l *Logger) Print(ctx context.Context, v ...any) {
	l.Log(ctx, l.level, fmt.Sprint(v...))
}

func (l *Logger) Printf(ctx context.Context, format string, v ...any) {
	l.Log(ctx, l.level, fmt.Sprintf(format, v...))
}

// WrapFunc logs the method, path, status and duration of each request
func (l *Logger) WrapFunc(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		l.LogAttrs(r.Context(), l.level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
