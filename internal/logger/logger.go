// Package logger provides structured file logging for the viewer.
// The TUI owns the terminal, so logs only ever go to a file, and only
// when one is configured.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog.Logger with file lifecycle handling.
type Logger struct {
	*slog.Logger
	filePath string
	file     *os.File
}

// New creates a logger writing JSON records to the given file.
func New(filePath string, level string) (*Logger, error) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: logLevel,
	})

	return &Logger{
		Logger:   slog.New(handler),
		filePath: filePath,
		file:     file,
	}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// FilePath returns the log file path.
func (l *Logger) FilePath() string {
	return l.filePath
}

// LogAppStart logs application startup.
func (l *Logger) LogAppStart(version, configPath, profile string) {
	l.Info("application started",
		slog.String("version", version),
		slog.String("config_path", configPath),
		slog.String("color_profile", profile),
	)
}

// LogRenderPass logs one full palette render.
func (l *Logger) LogRenderPass(width, height, categories, swatches int) {
	l.Debug("palette rendered",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("categories", categories),
		slog.Int("swatches", swatches),
	)
}

// Global logger instance; nil until Init, and every convenience
// function tolerates that.
var globalLogger *Logger

// Init initializes the global logger.
func Init(filePath string, level string) error {
	logger, err := New(filePath, level)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// Get returns the global logger instance, nil when logging is off.
func Get() *Logger {
	return globalLogger
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.Error(msg, args...)
	}
}

// LogRenderPass logs one full palette render on the global logger.
func LogRenderPass(width, height, categories, swatches int) {
	if globalLogger != nil {
		globalLogger.LogRenderPass(width, height, categories, swatches)
	}
}
