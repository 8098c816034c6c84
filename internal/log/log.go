// Package log provides leveled, category-tagged logging for taskbook.
// Entries go to a console stream (stderr by default) as single lines with
// structured key=value fields. The registries themselves never log; only
// the composition layer does.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unknown strings fall back to
// info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig Category = "config" // Configuration loading/saving
	CatUsers  Category = "users"  // User registry composition
	CatTasks  Category = "tasks"  // Task registry composition
	CatDemo   Category = "demo"   // Sample-data seeding
	CatCache  Category = "cache"  // Cache operations
)

// Logger provides leveled logging to a single writer.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var defaultLogger = &Logger{
	writer:   os.Stderr,
	enabled:  true,
	minLevel: LevelInfo,
}

// SetOutput redirects log output. Useful for tests.
func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defaultLogger.writer = w
	defaultLogger.mu.Unlock()
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	defaultLogger.mu.Lock()
	defaultLogger.enabled = enabled
	defaultLogger.mu.Unlock()
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	defaultLogger.mu.Lock()
	defaultLogger.minLevel = level
	defaultLogger.mu.Unlock()
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	logAt(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	logAt(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	logAt(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	logAt(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	logAt(LevelError, cat, msg, fields...)
}

func logAt(level Level, cat Category, msg string, fields ...any) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if !defaultLogger.enabled || level < defaultLogger.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [ERROR] [tasks] message key=value key2=value2
	timestamp := time.Now().Format("2006-01-02T15:04:05")
	entry := fmt.Sprintf("%s [%s] [%s] %s", timestamp, level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// Odd field count - append orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(entry))
	}
}
