// File: utils.go
// Title: Shared Error Construction Utilities
// Description: Fluent ErrorBuilder plus the standard constructors every
//              foundation module uses to report failures.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-16 v0.2.0: Codec constructors (InvalidEncoding, IllegalCharacter, InvalidLength)

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================
// Foundation modules report failures through these constructors instead of
// fmt.Errorf() or errors.New().

// InvalidArgument reports a caller contract violation on a named parameter
func InvalidArgument(module, operation, param string, value interface{}, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidArgument).
		Detail("param", param).
		Detail("value", value).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidEncoding reports an encoded payload that could not be decoded
func InvalidEncoding(module, operation, input, message string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(mdwerror.CodeInvalidEncoding).
		Detail("input", Preview(input)).
		Severity(mdwerror.SeverityLow).
		Build()
}

// IllegalCharacter reports a character outside the expected alphabet. A
// negative position means the offset is unknown.
func IllegalCharacter(module, operation, input string, position int, message string) *mdwerror.Error {
	builder := NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeIllegalCharacter).
		Detail("input", Preview(input)).
		Severity(mdwerror.SeverityLow)
	if position >= 0 {
		builder.Detail("position", position)
	}
	return builder.Build()
}

// InvalidLength reports an input whose length violates the encoding rules
func InvalidLength(module, operation, input string, length int, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidLength).
		Detail("input", Preview(input)).
		Detail("length", length).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// ConfigError reports an unreadable or invalid configuration source
func ConfigError(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("failed to load configuration from %s", path).
		Cause(cause).
		Code(mdwerror.CodeConfigError).
		Detail("path", path).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// InvalidConfig reports a configuration value outside its allowed set
func InvalidConfig(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid value %v for %s, expected %s", value, key, expected).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Severity(mdwerror.SeverityHigh).
		Build()
}
