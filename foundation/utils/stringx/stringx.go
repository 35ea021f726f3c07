// File: stringx.go
// Title: Core String Transformations
// Description: Bounded-length truncation, suffix enforcement and placeholder
//              substitution. Lengths are counted in runes.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Argument errors, EnsureSuffix, SubstitutePlaceholders

package stringx

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/mapx"
)

// Truncation symbols
const (
	EllipsisASCII   = "..."
	EllipsisUnicode = "…"
)

// IsBlank checks if a string is empty or contains only whitespace characters.
// Uses unicode.IsSpace for proper Unicode whitespace detection.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens value to at most maxLength runes. A value that does not
// fit keeps its first maxLength-len(truncateSymbol) runes followed by
// truncateSymbol. The arguments are validated even when value is empty.
func Truncate(value string, maxLength int, truncateSymbol string) (string, error) {
	const op = "truncate"

	if maxLength < 1 {
		return "", errors.InvalidArgument(errors.ModuleStringx, op, "maxLength", maxLength,
			fmt.Sprintf(errors.MsgParamCannotBeLessThan, "maxLength", 1, maxLength))
	}

	symbolLen := utf8.RuneCountInString(truncateSymbol)
	if symbolLen > maxLength {
		return "", errors.InvalidArgument(errors.ModuleStringx, op, "truncateSymbol", truncateSymbol,
			fmt.Sprintf(errors.MsgParamLengthGreaterThan, "truncateSymbol", "maxLength"))
	}

	if utf8.RuneCountInString(value) <= maxLength {
		return value, nil
	}
	return string([]rune(value)[:maxLength-symbolLen]) + truncateSymbol, nil
}

// EnsureSuffix appends symbol to input unless input already ends with it
func EnsureSuffix(input, symbol string) (string, error) {
	if symbol == "" {
		return "", errors.InvalidArgument(errors.ModuleStringx, "ensure_suffix", "symbol", symbol,
			fmt.Sprintf(errors.MsgParamCannotBeEmpty, "symbol"))
	}

	if strings.HasSuffix(input, symbol) {
		return input, nil
	}
	return input + symbol, nil
}

// SubstitutePlaceholders replaces every keyPrefix+key+keySuffix in input with
// the string form of the key's value. Keys are applied in insertion order, so
// a substituted value may itself be matched by a later key. A nil value
// substitutes the empty string. Placeholders without a key are left as is.
func SubstitutePlaceholders(input string, keyValues *mapx.Ordered[string, any], keyPrefix, keySuffix string) (string, error) {
	if keyValues == nil {
		return "", errors.InvalidArgument(errors.ModuleStringx, "substitute_placeholders", "keyValues", nil,
			fmt.Sprintf(errors.MsgParamCannotBeNil, "keyValues"))
	}

	if IsBlank(input) {
		return input, nil
	}

	result := input
	for key, value := range keyValues.All() {
		placeholder := keyPrefix + key + keySuffix
		if placeholder == "" || !strings.Contains(result, placeholder) {
			continue
		}
		result = strings.ReplaceAll(result, placeholder, valueString(value))
	}
	return result, nil
}

// valueString renders v for substitution. Nil values, typed or not, render
// as the empty string.
func valueString(v any) string {
	if v == nil {
		return ""
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(v)
}
