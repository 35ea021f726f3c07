// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization and exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-10-16 v0.2.0: Exit code mapping

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeInvalidEncoding, "INVALID_ENCODING"},
		{CodeIllegalCharacter, "ILLEGAL_CHARACTER"},
		{CodeInvalidLength, "INVALID_LENGTH"},
		{CodeInvalidArgument, "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeIllegalCharacter, true},
		{"config code", CodeInvalidConfig, true},
		{"unknown code", Code("NOT_A_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeInvalidEncoding, "encoding"},
		{CodeIllegalCharacter, "encoding"},
		{CodeInvalidLength, "encoding"},
		{CodeInvalidArgument, "validation"},
		{CodeValidationFailed, "validation"},
		{CodeConfigError, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeUnknown, "generic"},
		{CodeNotFound, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, 64},
		{CodeIllegalCharacter, 65},
		{CodeInvalidLength, 65},
		{CodeInvalidEncoding, 65},
		{CodeNotFound, 66},
		{CodeInternal, 70},
		{CodeInvalidConfig, 78},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("Code.ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
