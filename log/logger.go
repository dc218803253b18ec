package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents logging severity
type LogLevel int

const (
	// LogLevelDebug for node-by-node progress
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for turn level events
	LogLevelInfo
	// LogLevelWarn for recoverable failures such as a retried tool call
	LogLevelWarn
	// LogLevelError for failed turns
	LogLevelError
	// LogLevelNone disables all logging
	LogLevelNone
)

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// ParseLevel converts a level name (case-insensitive) into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none", "off", "disable":
		return LogLevelNone, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is the logging contract shared by all packages of the module.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// DefaultLogger implements Logger using Go's standard log package
type DefaultLogger struct {
	logger *log.Logger
	level  LogLevel
}

const prefix = "[langraph] "

// NewDefaultLogger creates a logger writing to stderr
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	return NewCustomLogger(os.Stderr, level)
}

// NewCustomLogger creates a logger with custom output
func NewCustomLogger(out io.Writer, level LogLevel) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(out, prefix, log.LstdFlags),
		level:  level,
	}
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, v ...any) {
	if l.level <= LogLevelDebug {
		l.logger.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, v ...any) {
	if l.level <= LogLevelInfo {
		l.logger.Printf("[INFO] "+format, v...)
	}
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, v ...any) {
	if l.level <= LogLevelWarn {
		l.logger.Printf("[WARN] "+format, v...)
	}
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, v ...any) {
	if l.level <= LogLevelError {
		l.logger.Printf("[ERROR] "+format, v...)
	}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// New builds a logger for the named backend: "std" (default), "golog" or "zerolog".
func New(backend string, level LogLevel, out io.Writer) (Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(backend) {
	case "", "std", "stdlib":
		return NewCustomLogger(out, level), nil
	case "golog":
		return NewGologWriterLogger(out, level), nil
	case "zerolog":
		return NewZerologWriterLogger(out, level), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewDefaultLogger(LogLevelInfo)
)

// SetDefaultLogger sets the package-level logger used by components built without one.
func SetDefaultLogger(logger Logger) {
	if logger == nil {
		logger = NoOpLogger{}
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// GetDefaultLogger returns the current package-level logger
func GetDefaultLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// OrDefault returns l, or the package-level logger when l is nil.
func OrDefault(l Logger) Logger {
	if l != nil {
		return l
	}
	return GetDefaultLogger()
}

// Debug logs a debug message using the package-level logger
func Debug(format string, v ...any) { GetDefaultLogger().Debug(format, v...) }

// Info logs an informational message using the package-level logger
func Info(format string, v ...any) { GetDefaultLogger().Info(format, v...) }

// Warn logs a warning message using the package-level logger
func Warn(format string, v ...any) { GetDefaultLogger().Warn(format, v...) }

// Error logs an error message using the package-level logger
func Error(format string, v ...any) { GetDefaultLogger().Error(format, v...) }
