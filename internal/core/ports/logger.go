// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger defines the interface for application logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a debug message. Suppressed unless verbose logging is enabled.
	Debug(msg string)

	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, formatting its cause chain.
	Error(err error)

	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)

	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)

	// SetVerbose lowers the log level so Debug messages are emitted.
	SetVerbose(enable bool)
}
