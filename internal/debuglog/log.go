package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff // Disables all logging
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown values map to INFO.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "OFF", "NONE":
		return LevelOff
	default:
		return LevelInfo
	}
}

// The terminal belongs to the timer screen, so logs only ever go to a file.
var (
	mu           sync.Mutex
	currentLevel = LevelOff
	logger       *log.Logger
	logFile      io.Closer
)

// DefaultPath returns ~/.tmr/tmr.log.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tmr", "tmr.log")
}

// Setup configures the logging system with the specified level and optional file path.
// If filePath is empty, DefaultPath is used.
func Setup(level LogLevel, filePath ...string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	currentLevel = level

	if level == LevelOff {
		return nil
	}

	logPath := DefaultPath()
	if len(filePath) > 0 && filePath[0] != "" {
		logPath = filePath[0]
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	logFile = f
	logger = log.New(f, "tmr ", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// SetOutput logs to w instead of a file. Intended for tests.
func SetOutput(level LogLevel, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	currentLevel = level
	if level != LevelOff {
		logger = log.New(w, "tmr ", 0)
	}
}

func GetLevel() LogLevel {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// Close closes the log file if open
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func logf(level LogLevel, suffix string, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < currentLevel || logger == nil {
		return
	}
	logger.Printf("[%s] %s%s", level.String(), fmt.Sprintf(format, args...), suffix)
}

func Debugf(format string, args ...any) {
	logf(LevelDebug, "", format, args...)
}

func Infof(format string, args ...any) {
	logf(LevelInfo, "", format, args...)
}

func Warnf(format string, args ...any) {
	logf(LevelWarn, "", format, args...)
}

func Errorf(format string, args ...any) {
	logf(LevelError, "", format, args...)
}

// FieldLogger appends key=value fields to every message.
type FieldLogger struct {
	suffix string
}

// WithFields returns a logger that appends the fields, sorted by key.
func WithFields(fields map[string]interface{}) *FieldLogger {
	if len(fields) == 0 {
		return &FieldLogger{}
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fields[k])
	}
	return &FieldLogger{suffix: " [" + strings.Join(parts, " ") + "]"}
}

func (fl *FieldLogger) Debugf(format string, args ...any) {
	logf(LevelDebug, fl.suffix, format, args...)
}

func (fl *FieldLogger) Infof(format string, args ...any) {
	logf(LevelInfo, fl.suffix, format, args...)
}

func (fl *FieldLogger) Warnf(format string, args ...any) {
	logf(LevelWarn, fl.suffix, format, args...)
}

func (fl *FieldLogger) Errorf(format string, args ...any) {
	logf(LevelError, fl.suffix, format, args...)
}
