// File: stringx_test.go
// Title: Unit Tests for Core String Transformations
// Description: Tests cover argument validation, Unicode handling and the
//              documented edge cases of every transformation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: EnsureSuffix and SubstitutePlaceholders tests

package stringx

import (
	"errors"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/mapx"
)

func paramOf(t *testing.T, err error) string {
	t.Helper()
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("expected *mdwerror.Error, got %T", err)
	}
	param, _ := mdwErr.Detail("param")
	s, _ := param.(string)
	return s
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"non-breaking space", "\u00a0", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		symbol    string
		expected  string
	}{
		{"truncated with symbol", "1234567890", 6, "--", "1234--"},
		{"exact fit unchanged", "1234", 4, "...", "1234"},
		{"shorter unchanged", "12", 10, EllipsisASCII, "12"},
		{"empty value", "", 3, "...", ""},
		{"empty symbol", "abcdef", 3, "", "abc"},
		{"symbol fills max length", "abcdef", 3, "...", "..."},
		{"unicode ellipsis", "Hello, World", 6, EllipsisUnicode, "Hello…"},
		{"multibyte value", "こんにちは世界", 4, ".", "こんに."},
		{"max length one", "ab", 1, "", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Truncate(tt.value, tt.maxLength, tt.symbol)
			if err != nil {
				t.Fatalf("Truncate(%q, %d, %q) unexpected error: %v", tt.value, tt.maxLength, tt.symbol, err)
			}
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.value, tt.maxLength, tt.symbol, result, tt.expected)
			}
		})
	}
}

func TestTruncateInvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		symbol    string
		param     string
	}{
		{"negative max length", "12", -1, ".", "maxLength"},
		{"zero max length", "12", 0, "", "maxLength"},
		{"zero max length with empty value", "", 0, "", "maxLength"},
		{"symbol longer than max", "1234567890", 2, "...", "truncateSymbol"},
		{"symbol longer than max with empty value", "", 2, "...", "truncateSymbol"},
		{"multibyte symbol counted in runes", "abc", 1, "……", "truncateSymbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Truncate(tt.value, tt.maxLength, tt.symbol)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
				t.Fatalf("Truncate(%q, %d, %q) error = %v; want %s", tt.value, tt.maxLength, tt.symbol, err, mdwerror.CodeInvalidArgument)
			}
			if param := paramOf(t, err); param != tt.param {
				t.Errorf("Truncate(%q, %d, %q) param = %q; want %q", tt.value, tt.maxLength, tt.symbol, param, tt.param)
			}
		})
	}
}

func TestTruncateUnicodeSymbolFits(t *testing.T) {
	// one rune, three bytes
	result, err := Truncate("abcdef", 1, EllipsisUnicode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != EllipsisUnicode {
		t.Errorf("Truncate = %q; want %q", result, EllipsisUnicode)
	}
}

func TestEnsureSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		symbol   string
		expected string
	}{
		{"appended", "pathA/pathB", "/", "pathA/pathB/"},
		{"already present", "pathA/pathB/", "/", "pathA/pathB/"},
		{"empty input", "", "/", "/"},
		{"multi-char symbol", "file", ".txt", "file.txt"},
		{"partial overlap", "file.tx", ".txt", "file.tx.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EnsureSuffix(tt.input, tt.symbol)
			if err != nil {
				t.Fatalf("EnsureSuffix(%q, %q) unexpected error: %v", tt.input, tt.symbol, err)
			}
			if result != tt.expected {
				t.Errorf("EnsureSuffix(%q, %q) = %q; want %q", tt.input, tt.symbol, result, tt.expected)
			}

			again, _ := EnsureSuffix(result, tt.symbol)
			if again != result {
				t.Errorf("EnsureSuffix not idempotent: %q -> %q", result, again)
			}
		})
	}
}

func TestEnsureSuffixEmptySymbol(t *testing.T) {
	_, err := EnsureSuffix("path", "")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Fatalf("EnsureSuffix(path, \"\") error = %v; want %s", err, mdwerror.CodeInvalidArgument)
	}
	if param := paramOf(t, err); param != "symbol" {
		t.Errorf("param = %q; want symbol", param)
	}
}

func TestSubstitutePlaceholders(t *testing.T) {
	values := mapx.FromEntries(
		mapx.Entry[string, any]{Key: "keyA", Value: "X"},
		mapx.Entry[string, any]{Key: "count", Value: 42},
		mapx.Entry[string, any]{Key: "empty", Value: nil},
		mapx.Entry[string, any]{Key: "nilPointer", Value: (*string)(nil)},
		mapx.Entry[string, any]{Key: "nilSlice", Value: []string(nil)},
		mapx.Entry[string, any]{Key: "nilMap", Value: map[string]any(nil)},
		mapx.Entry[string, any]{Key: "nilError", Value: error(nil)},
	)

	tests := []struct {
		name     string
		input    string
		prefix   string
		suffix   string
		expected string
	}{
		{"single key", "The value {{keyA}}.", "{{", "}}", "The value X."},
		{"repeated key", "{{keyA}}-{{keyA}}", "{{", "}}", "X-X"},
		{"non string value", "n={{count}}", "{{", "}}", "n=42"},
		{"nil value", "[{{empty}}]", "{{", "}}", "[]"},
		{"nil pointer value", "x{nilPointer}y", "{", "}", "xy"},
		{"nil slice value", "x{nilSlice}y", "{", "}", "xy"},
		{"nil map value", "x{nilMap}y", "{", "}", "xy"},
		{"nil interface value", "x{nilError}y", "{", "}", "xy"},
		{"missing key untouched", "{{keyA}} {{other}}", "{{", "}}", "X {{other}}"},
		{"no prefix or suffix", "keyA count", "", "", "X 42"},
		{"dollar style", "${keyA}", "${", "}", "X"},
		{"blank input", "   ", "{{", "}}", "   "},
		{"empty input", "", "{{", "}}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SubstitutePlaceholders(tt.input, values, tt.prefix, tt.suffix)
			if err != nil {
				t.Fatalf("SubstitutePlaceholders(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("SubstitutePlaceholders(%q, %q, %q) = %q; want %q", tt.input, tt.prefix, tt.suffix, result, tt.expected)
			}
		})
	}
}

func TestSubstitutePlaceholdersInsertionOrder(t *testing.T) {
	values := mapx.NewOrdered[string, any]()
	values.Set("a", "<b>")
	values.Set("b", "B")

	result, _ := SubstitutePlaceholders("<a>", values, "<", ">")
	if result != "B" {
		t.Errorf("result = %q; want %q", result, "B")
	}

	reversed := mapx.NewOrdered[string, any]()
	reversed.Set("b", "B")
	reversed.Set("a", "<b>")

	result, _ = SubstitutePlaceholders("<a>", reversed, "<", ">")
	if result != "<b>" {
		t.Errorf("result = %q; want %q", result, "<b>")
	}
}

func TestSubstitutePlaceholdersEmptyPlaceholder(t *testing.T) {
	values := mapx.NewOrdered[string, any]()
	values.Set("", "X")

	result, err := SubstitutePlaceholders("abc", values, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "abc" {
		t.Errorf("result = %q; want %q", result, "abc")
	}
}

func TestSubstitutePlaceholdersNilMap(t *testing.T) {
	_, err := SubstitutePlaceholders("{{a}}", nil, "{{", "}}")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Fatalf("error = %v; want %s", err, mdwerror.CodeInvalidArgument)
	}
	if param := paramOf(t, err); param != "keyValues" {
		t.Errorf("param = %q; want keyValues", param)
	}

	// the nil check comes before the blank check
	_, err = SubstitutePlaceholders("", nil, "{{", "}}")
	if err == nil {
		t.Error("expected error for nil map with empty input")
	}
}
