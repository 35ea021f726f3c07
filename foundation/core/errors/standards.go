// File: standards.go
// Title: Error Standards for textkit Foundation
// Description: Module identifiers, canonical failure messages and helpers to
//              analyse errors produced by the foundation packages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for error standardization
// - 2026-10-16 v0.2.0: Codec messages, input previews

package errors

import (
	"errors"
	"unicode/utf8"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleEncodingx = "encodingx"
	ModuleStringx   = "stringx"
	ModuleMapx      = "mapx"
	ModuleConfig    = "config"
	ModuleLog       = "log"
	ModuleCLI       = "cli"
)

// Canonical failure messages. Format verbs are filled in by the constructors.
const (
	MsgParamCannotBeEmpty     = "%s can't be empty"
	MsgParamCannotBeNil       = "%s can't be nil"
	MsgParamCannotBeLessThan  = "%s can't be less than %d, value was %d"
	MsgParamLengthGreaterThan = "%s string length can't be greater than value of %s"
	MsgBase64Invalid          = "the input is not a valid Base64 string"
	MsgBase64URLIllegalChar   = "the input is not a valid Base64 URL string as it contains a non-Base64 URL character, more than two padding characters, or an illegal character among the padding characters"
	MsgBase64URLInvalid       = "the input is not a valid Base64 URL string"
	MsgHexIllegalCharacter    = "the input is not a valid hex string as it contains a non-hex character"
	MsgHexInvalidLength       = "invalid length for a hex string"
)

// maxPreviewLen caps how much of an offending input is copied into details
const maxPreviewLen = 64

// Preview returns s shortened to a size suitable for error details
func Preview(s string) string {
	if len(s) <= maxPreviewLen {
		return s
	}
	cut := maxPreviewLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// ExtractDetails extracts all details from the first textkit error in err's chain
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return module != "" && ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
