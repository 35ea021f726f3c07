// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: structured entries with context
//              fields, selectable output formats and integration with the
//              textkit error system.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with structured logging
// - 2026-10-16 v0.2.0: Synchronous writes only, stderr default, LogError via errors.As

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Logger represents a structured logger with contextual information. With*
// methods return a modified copy and leave the receiver untouched.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context added to all entries
	contextFields Fields
	correlationID string

	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// writeMu serialises writes of all loggers sharing one output
var writeMu sync.Mutex

// New creates a logger writing text entries at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatText,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	logger := &Logger{
		level:            config.Level,
		formatter:        formatterFor(config.Format, output),
		output:           output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}

	return logger
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = formatterFor(format, c.output) })
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) {
		c.output = output
		if _, ok := c.formatter.(*ConsoleFormatter); ok {
			c.formatter = NewConsoleFormatterFor(output)
		}
	})
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.contextFields[key] = value })
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) {
		for k, v := range fields {
			c.contextFields[k] = v
		}
	})
}

// WithCorrelationID sets the correlation ID context
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	return l.derive(func(c *Logger) { c.correlationID = correlationID })
}

// WithCaller enables caller information in log entries
func (l *Logger) WithCaller(skip int) *Logger {
	return l.derive(func(c *Logger) {
		c.enableCaller = true
		c.callerSkipFrames = skip
	})
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Code, operation
// and details of a textkit error become error_* fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	l.log(LevelForSeverity(mdwErr.Severity()), err.Error(), err, fields)
}

// LevelForSeverity maps an error severity onto the level LogError uses
func LevelForSeverity(severity mdwerror.Severity) Level {
	switch severity {
	case mdwerror.SeverityLow:
		return LevelInfo
	case mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

func severityOf(err error) (mdwerror.Severity, bool) {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Severity(), true
	}
	return mdwerror.SeverityMedium, false
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel changes the level in place. Derived loggers are not affected.
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()

	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if l.enableCaller {
		if function, file, line, ok := l.getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	_, _ = output.Write(formatted)
}

// getCaller returns the caller of the public logging method
func (l *Logger) getCaller() (function, file string, line int, ok bool) {
	// getCaller, log, public method, user code
	skip := 3 + l.callerSkipFrames

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}

	return function, file, line, true
}

// derive copies the logger under the read lock and applies change to the copy
func (l *Logger) derive(change func(*Logger)) *Logger {
	l.mutex.RLock()
	clone := &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		correlationID:    l.correlationID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
		contextFields:    l.contextFields.Clone(),
	}
	l.mutex.RUnlock()

	if clone.contextFields == nil {
		clone.contextFields = make(Fields)
	}
	change(clone)
	return clone
}

var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultLoggerMu.Lock()
	defaultLogger = logger
	defaultLoggerMu.Unlock()
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
