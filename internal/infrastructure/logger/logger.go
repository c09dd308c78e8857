package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// SlogLogger adapts a *slog.Logger to the printf-style IAppLogger port.
type SlogLogger struct {
	l *slog.Logger
}

var _ usecasecontract.IAppLogger = (*SlogLogger)(nil)

// NewSlogLogger builds a logger writing to stdout. format is "json" or "text".
func NewSlogLogger(format, level string) *SlogLogger {
	return NewSlogLoggerTo(os.Stdout, format, level)
}

// NewSlogLoggerTo is NewSlogLogger with an explicit destination.
func NewSlogLoggerTo(w io.Writer, format, level string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return &SlogLogger{l: slog.New(h)}
}

// Slog exposes the underlying structured logger for request logging.
func (s *SlogLogger) Slog() *slog.Logger {
	return s.l
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func (s *SlogLogger) logf(level slog.Level, format string, args ...interface{}) {
	if !s.l.Enabled(context.Background(), level) {
		return
	}
	s.l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message.
func (s *SlogLogger) Debugf(format string, args ...interface{}) {
	s.logf(slog.LevelDebug, format, args...)
}

// Infof logs an info message.
func (s *SlogLogger) Infof(format string, args ...interface{}) {
	s.logf(slog.LevelInfo, format, args...)
}

// Warnf logs a warning message.
func (s *SlogLogger) Warnf(format string, args ...interface{}) {
	s.logf(slog.LevelWarn, format, args...)
}

// Warningf logs a warning message.
func (s *SlogLogger) Warningf(format string, args ...interface{}) {
	s.logf(slog.LevelWarn, format, args...)
}

// Errorf logs an error message.
func (s *SlogLogger) Errorf(format string, args ...interface{}) {
	s.logf(slog.LevelError, format, args...)
}

// Fatalf logs a fatal message and exits.
func (s *SlogLogger) Fatalf(format string, args ...interface{}) {
	s.logf(slog.LevelError, format, args...)
	os.Exit(1)
}
