package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/wpm/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error. If zerr's
// API changes, errors gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	level    slog.Level
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
}

// rebuild swaps the underlying handler for the current mode, level and
// output. Callers must hold the write lock.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l.level})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level})
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination. If w is nil, os.Stderr
// is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose lowers the log level to Debug when enabled.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if enable {
		l.level = slog.LevelDebug
	} else {
		l.level = slog.LevelInfo
	}
	l.rebuild()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message, rendering the full cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	// Collect messages by traversing the error chain programmatically
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: get raw message without the chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: append full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	// Format the collected messages hierarchically
	var formattedLines []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			// Main error
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
		} else {
			if i == 1 {
				formattedLines = append(formattedLines, "", "  Caused by:")
			}
			formattedLines = append(formattedLines, "    → "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "      "+line)
			}
		}
	}

	msg := strings.Join(formattedLines, "\n")
	l.logger.Error(msg)
}
