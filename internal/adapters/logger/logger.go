// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.trai.ch/weft/internal/core/ports"
)

// Logger implements ports.Logger using log/slog. It is constructed once
// at wiring time and carries its construction instant; every record is
// stamped with the elapsed time since then, so log lines read as a
// timeline of the process without any global state.
type Logger struct {
	logger *slog.Logger
	start  time.Time
	mu     sync.RWMutex
}

// New creates a new Logger instance writing to stderr.
func New() ports.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		start:  time.Now(),
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and replaces the underlying slog handler.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, "elapsed", l.elapsed())
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, "elapsed", l.elapsed())
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err, "elapsed", l.elapsed())
}

func (l *Logger) elapsed() time.Duration {
	return time.Since(l.start).Round(time.Millisecond)
}
