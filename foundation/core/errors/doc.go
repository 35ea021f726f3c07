// Package errors is the standard way foundation modules report failures.
//
// Package: errors
// Title: Standard Error Construction for textkit Foundation
// Description: Builds *mdwerror.Error values with a consistent module,
//              operation and detail layout so callers can classify a failure
//              by code instead of by message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: Codec constructors and input previews
//
// # Error Creation
//
// Every constructor records the module and operation in the error details
// and assigns a code from the core error package:
//   - InvalidArgument: caller contract violation (INVALID_ARGUMENT)
//   - InvalidEncoding: payload could not be decoded (INVALID_ENCODING)
//   - IllegalCharacter: character outside the alphabet (ILLEGAL_CHARACTER)
//   - InvalidLength: payload length violates the encoding (INVALID_LENGTH)
//   - NotFound, ConfigError, InvalidConfig
//
// Offending inputs are stored through Preview, so a huge payload never ends
// up verbatim in a log line.
//
// # Usage
//
//	if maxLength < 1 {
//		return "", errors.InvalidArgument(errors.ModuleStringx, "truncate",
//			"maxLength", maxLength,
//			fmt.Sprintf(errors.MsgParamCannotBeLessThan, "maxLength", 1, maxLength))
//	}
//
// Analysing an error:
//
//	if mdwerror.HasCode(err, mdwerror.CodeIllegalCharacter) {
//		pos, _ := errors.ExtractDetails(err)["position"].(int)
//		...
//	}
//
// For custom cases the ErrorBuilder offers a fluent interface:
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load_values").
//		Messagef("unsupported value type %T", v).
//		Code(mdwerror.CodeInvalidConfig).
//		Build()
package errors
