package argio

import (
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatTagged LogFormat = iota // [WARN] [ERROR] [DEBUG]
	LogFormatPlain                   // No prefix
)

// ParseLogFormat maps "tagged" or "plain" to its LogFormat.
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "tagged":
		return LogFormatTagged, nil
	case "plain":
		return LogFormatPlain, nil
	}
	return LogFormatTagged, fmt.Errorf("invalid log format %q (want tagged or plain)", s)
}

// DefaultTimeFormat is the layout used when timestamps are on
const DefaultTimeFormat = "15:04:05"

// ANSI colors per level
var levelColors = map[LogLevel]string{
	LevelDebug:   "\x1b[35m",
	LevelInfo:    "\x1b[34m",
	LevelWarning: "\x1b[33m",
	LevelError:   "\x1b[31m",
}

const colorReset = "\x1b[0m"

// Logger writes leveled messages to the diagnostics stream of an IOManager
type Logger struct {
	io         *IOManager
	format     LogFormat
	minLevel   LogLevel
	withTime   bool
	timeFormat string
}

// NewLogger creates a new logger bound to the given IOManager.
// Debug messages are dropped until WithLevel(LevelDebug) is set.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:         io,
		format:     LogFormatTagged,
		minLevel:   LevelInfo,
		timeFormat: DefaultTimeFormat,
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel sets the lowest level that is written
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string).
// An empty layout keeps the current one.
func (l *Logger) WithTimeFormat(format string) *Logger {
	if format != "" {
		l.timeFormat = format
	}
	return l
}

// Enabled reports whether messages at level are written
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.minLevel
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.io.Err(), l.formatMessage(level, msg))
}

// formatMessage formats the log message according to the configured format
func (l *Logger) formatMessage(level LogLevel, msg string) string {
	// Blank lines pass through untouched
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var b strings.Builder
	if l.format == LogFormatTagged {
		b.WriteString("[" + level.String() + "] ")
	}
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(msg)

	if !l.io.SupportsColor() {
		return b.String()
	}
	return levelColors[level] + b.String() + colorReset
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
