package logging

import (
	"go.uber.org/zap"
)

// Logger is a structured logger for the service. Messages take alternating
// key-value pairs after the message, zap sugared style.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a new production Logger writing JSON to stdout.
func NewLogger() *Logger {
	return &Logger{
		sugar: zap.Must(zap.NewProduction()).Sugar(),
	}
}

// NewDevelopmentLogger creates a Logger with human-readable output.
func NewDevelopmentLogger() *Logger {
	return &Logger{
		sugar: zap.Must(zap.NewDevelopment()).Sugar(),
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
