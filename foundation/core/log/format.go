// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log entries: JSON, plain text, colored
//              console and logfmt.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-16 v0.2.0: Console colors via lipgloss, deterministic field order

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs text with the level colored for terminals
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, errors.InvalidArgument(errors.ModuleLog, "parse_format", "format", format,
			fmt.Sprintf("invalid log format %q", format))
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := marshaler.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "15:04:05",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry, fmt.Sprintf("[%s]", entry.Level.ShortString())) + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry, level string) string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}
	parts = append(parts, level)

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}
	if entry.CorrelationID != "" {
		parts = append(parts, fmt.Sprintf("(cid=%s)", entry.CorrelationID))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.SortedKeys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	if entry.Caller != nil {
		parts = append(parts, fmt.Sprintf("at=%s:%d", entry.Caller.File, entry.Caller.Line))
	}

	return strings.Join(parts, " ")
}

// levelColors colors the level tag of console output
var levelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("#9CA3AF"),
	LevelDebug: lipgloss.Color("#06B6D4"),
	LevelInfo:  lipgloss.Color("#10B981"),
	LevelWarn:  lipgloss.Color("#F59E0B"),
	LevelError: lipgloss.Color("#EF4444"),
	LevelFatal: lipgloss.Color("#D946EF"),
	LevelAudit: lipgloss.Color("#7C3AED"),
}

func levelStyles(r *lipgloss.Renderer) map[Level]lipgloss.Style {
	styles := make(map[Level]lipgloss.Style, len(levelColors))
	for level, color := range levelColors {
		style := r.NewStyle().Foreground(color)
		if level >= LevelWarn && level != LevelAudit {
			style = style.Bold(true)
		}
		styles[level] = style
	}
	return styles
}

// ConsoleFormatter formats log entries for terminals. Colors are dropped
// when the writer it was created for is not a terminal.
type ConsoleFormatter struct {
	DisableColors bool

	*TextFormatter
	styles map[Level]lipgloss.Style
}

// NewConsoleFormatter creates a console formatter for stderr
func NewConsoleFormatter() *ConsoleFormatter {
	return NewConsoleFormatterFor(os.Stderr)
}

// NewConsoleFormatterFor creates a console formatter whose colors follow the
// terminal capabilities of w
func NewConsoleFormatterFor(w io.Writer) *ConsoleFormatter {
	return &ConsoleFormatter{
		TextFormatter: NewTextFormatter(),
		styles:        levelStyles(lipgloss.NewRenderer(w)),
	}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	level := fmt.Sprintf("[%s]", entry.Level.ShortString())
	if style, ok := f.styles[entry.Level]; ok && !f.DisableColors {
		level = style.Render(level)
	}
	return []byte(f.line(entry, level) + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	parts := []string{
		"timestamp=" + entry.Timestamp.Format(f.TimestampFormat),
		"level=" + entry.Level.String(),
		fmt.Sprintf("message=%q", entry.Message),
	}

	if entry.Logger != "" {
		parts = append(parts, "logger="+entry.Logger)
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "correlation_id="+entry.CorrelationID)
	}

	for _, k := range entry.Fields.SortedKeys() {
		switch v := entry.Fields[k].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v))
		case error:
			parts = append(parts, fmt.Sprintf("%s=%q", k, v.Error()))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

// formatterFor returns the formatter for format bound to output
func formatterFor(format Format, output io.Writer) Formatter {
	if format == FormatConsole {
		return NewConsoleFormatterFor(output)
	}
	return GetFormatter(format)
}
