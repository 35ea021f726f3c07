// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for the textkit codecs and text
//              utilities. Codes classify failures so callers can branch on the
//              kind of problem instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Added encoding codes and exit code mapping for the CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeOperationFailed Code = "OPERATION_FAILED"

	// Caller contract violations
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Encoding and decoding
	CodeInvalidEncoding  Code = "INVALID_ENCODING"
	CodeIllegalCharacter Code = "ILLEGAL_CHARACTER"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeInvalidFormat    Code = "INVALID_FORMAT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeOperationFailed,
		CodeInvalidArgument, CodeValidationFailed,
		CodeInvalidEncoding, CodeIllegalCharacter, CodeInvalidLength, CodeInvalidFormat,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidEncoding, CodeIllegalCharacter, CodeInvalidLength, CodeInvalidFormat:
		return "encoding"
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidInput:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status for this error code, following
// the sysexits.h conventions.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidArgument, CodeValidationFailed, CodeInvalidInput:
		return 64 // EX_USAGE
	case CodeInvalidEncoding, CodeIllegalCharacter, CodeInvalidLength, CodeInvalidFormat:
		return 65 // EX_DATAERR
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeInternal:
		return 70 // EX_SOFTWARE
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 78 // EX_CONFIG
	default:
		return 1
	}
}
