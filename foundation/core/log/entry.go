// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry holding message, level, context and
//              custom fields of a single log line.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Sorted field keys for stable text output

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	CorrelationID string

	Fields Fields

	Error error

	// Caller is set only when caller reporting is enabled
	Caller *CallerInfo
}

// CallerInfo contains information about where the log was called from
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field for logging
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Merge combines multiple Fields into one
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone creates a copy of the Fields
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// SortedKeys returns the field names in lexical order
func (f Fields) SortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithField adds a single custom field to the entry
func (e *Entry) WithField(key string, value interface{}) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	e.Fields[key] = value
	return e
}

// WithCaller adds caller information to the entry
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{
		Function: function,
		File:     file,
		Line:     line,
	}
	return e
}
