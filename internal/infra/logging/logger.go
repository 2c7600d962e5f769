// Package logging provides file-based logging for pawsdoc.
// It outputs logs to a shared log file (.pawsdoc/logs/pawsdoc.log)
// and per-target log files (.pawsdoc/logs/target-<name>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/scattering-central/pawsdoc/internal/domain"
)

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog levels with file-based output.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile  *os.File
	targetFiles map[string]*os.File
	stateDir    string
	mu          sync.Mutex
	level       slog.Level
}

// New creates a new Logger that writes to the state directory's logs
// subdirectory. If stateDir is empty, logging is disabled.
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		stateDir:    stateDir,
		level:       level,
		targetFiles: make(map[string]*os.File),
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(filepath.Join(l.stateDir, "logs"), 0o750)
}

// ensureGlobalFile opens or returns the shared log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(l.stateDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureTargetFile opens or returns a per-target log file.
func (l *Logger) ensureTargetFile(target string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.targetFiles[target]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.TargetLogPath(l.stateDir, target)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open target log file: %w", err)
	}
	l.targetFiles[target] = f
	return f, nil
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for name, f := range l.targetFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.targetFiles, name)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [api] [gen] message
func formatLog(t time.Time, level slog.Level, target, category, msg string) string {
	if target == "" {
		target = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		target,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes an entry to the shared log and, when a target is given,
// to that target's log file.
func (l *Logger) log(level slog.Level, target, category, msg string) {
	if l.stateDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(time.Now(), level, target, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}
	if target != "" {
		if tf, err := l.ensureTargetFile(target); err == nil {
			_, _ = io.WriteString(tf, entry)
		}
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(target, category, msg string) {
	l.log(slog.LevelDebug, target, category, msg)
}

// Info logs an info message.
func (l *Logger) Info(target, category, msg string) {
	l.log(slog.LevelInfo, target, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(target, category, msg string) {
	l.log(slog.LevelWarn, target, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(target, category, msg string) {
	l.log(slog.LevelError, target, category, msg)
}
