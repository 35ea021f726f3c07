// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying code, severity, details and
//              a captured stack trace. Error stays compatible with the standard
//              error interface, errors.Is and errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors
// - 2026-10-16 v0.2.0: HasCode/GetCode walk wrapped chains via errors.As

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxErrorChainDepth limits how deep Wrap keeps nesting errors
	MaxErrorChainDepth = 15

	// MaxStackFrames limits the number of stack frames captured
	MaxStackFrames = 20
)

var stackFramePool = sync.Pool{
	New: func() interface{} {
		return make([]StackFrame, 0, MaxStackFrames)
	},
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(3),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	err := New(fmt.Sprintf(format, args...))
	err.stackTrace = captureStackTrace(3)
	return err
}

// Wrap wraps an existing error with additional context. Code, severity and
// details of a wrapped *Error are carried over.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		return &Error{
			message:    fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, rootOf(err).Error()),
			code:       GetCode(err),
			severity:   SeverityHigh,
			timestamp:  time.Now(),
			details:    map[string]interface{}{"truncated": true, "original_depth": depth},
			stackTrace: captureStackTrace(3),
		}
	}

	wrapped := &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(3),
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.operation = inner.operation
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

func chainDepth(err error) int {
	depth := 0
	for current := err; current != nil && depth < MaxErrorChainDepth*2; current = errors.Unwrap(current) {
		depth++
	}
	return depth
}

func rootOf(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code. Severity follows the code unless it was
// changed explicitly before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// RootCause returns the deepest error of the chain, or e itself
func (e *Error) RootCause() error {
	if e.cause == nil {
		return e
	}
	return rootOf(e.cause)
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))
	parts = append(parts, fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	if len(e.stackTrace) > 0 {
		data["stack_trace"] = e.stackTrace
	}

	return json.Marshal(data)
}

// captureStackTrace records up to MaxStackFrames callers, skipping the
// runtime.Callers frame and skip-1 frames above it.
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := stackFramePool.Get().([]StackFrame)[:0]
	defer stackFramePool.Put(frames[:0])

	iter := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := iter.Next()
		frames = append(frames, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more || len(frames) == MaxStackFrames {
			break
		}
	}

	result := make([]StackFrame, len(frames))
	copy(result, frames)
	return result
}

// HasCode reports whether any *Error in err's chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		var mdwErr *Error
		if !errors.As(err, &mdwErr) {
			return false
		}
		if mdwErr.code == code {
			return true
		}
		err = mdwErr.cause
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or CodeUnknown
func GetCode(err error) Code {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain, or
// SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.severity
	}
	return SeverityMedium
}
