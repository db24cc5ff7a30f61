// Package log is tabview's leveled logger. Messages go to stderr through
// the styles message formatters so they never mix with table output on
// stdout, and optionally to a plain log file.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"

	"github.com/imgajeed76/tabview/internal/ui/styles"
)

// Level represents logging verbosity
type Level int

const (
	ErrorLevel Level = iota
	InfoLevel
	DebugLevel
)

var levelNames = map[Level]string{
	ErrorLevel: "ERROR",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
}

func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel parses a string into a log level
func ParseLevel(s string) (Level, error) {
	switch s {
	case "error":
		return ErrorLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level: %s (valid: error, info, debug)", s)
	}
}

// Logger writes leveled messages to a terminal stream and an optional file.
type Logger struct {
	level      Level
	mu         sync.Mutex
	out        io.Writer
	logFile    *os.File
	fileLogger *stdlog.Logger
}

// New creates a logger writing to stderr. When logPath is non-empty every
// message, regardless of level, is also appended to that file.
func New(level Level, logPath string) (*Logger, error) {
	l := &Logger{level: level, out: os.Stderr}

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.logFile = f
		l.fileLogger = stdlog.New(f, "", stdlog.LstdFlags)
	}

	return l, nil
}

// NewWriter creates a logger writing to w, without a log file.
func NewWriter(level Level, w io.Writer) *Logger {
	return &Logger{level: level, out: w}
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		l.fileLogger = nil
		return err
	}
	return nil
}

// SetLevel changes the verbosity.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the current verbosity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.fileLogger != nil {
		l.fileLogger.Printf("%s: %s", levelNames[level], msg)
	}

	if level > l.level {
		return
	}

	switch level {
	case ErrorLevel:
		fmt.Fprintln(l.out, styles.ErrorMsg(msg))
	case DebugLevel:
		fmt.Fprintln(l.out, styles.MutedMsg("debug: "+msg))
	default:
		fmt.Fprintln(l.out, msg)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.log(ErrorLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...any) {
	l.log(InfoLevel, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.log(DebugLevel, format, args...)
}

// Warning logs a warning message (shown at info level and above)
func (l *Logger) Warning(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.fileLogger != nil {
		l.fileLogger.Printf("WARNING: %s", msg)
	}
	if l.level >= InfoLevel {
		fmt.Fprintln(l.out, styles.WarningMsg(msg))
	}
}

// ══════════════════════════════════════════════════════════════════════════
// Package-level default logger
// ══════════════════════════════════════════════════════════════════════════

var std = NewWriter(InfoLevel, os.Stderr)

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) { std = l }

func Errorf(format string, args ...any)   { std.Error(format, args...) }
func Infof(format string, args ...any)    { std.Info(format, args...) }
func Debugf(format string, args ...any)   { std.Debug(format, args...) }
func Warningf(format string, args ...any) { std.Warning(format, args...) }
