// Package logger provides a simple wrapper around slog for structured logging.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global logger instance.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: levelFromEnv(),
}))

// levelFromEnv reads CCDASH_LOG_LEVEL, defaulting to warn so log lines
// do not fight the terminal UI for the screen.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("CCDASH_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
