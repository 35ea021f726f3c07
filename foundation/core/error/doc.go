// Package error provides structured error values for textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: Implements an error type carrying a classification code, a
//              severity, free-form details and the stack at creation time.
//              Codecs and text helpers report every failure through it so
//              callers can branch on the code rather than on message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Encoding codes, errors.As based code lookup
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("hex string has odd length").
//		WithCode(mdwerror.CodeInvalidLength).
//		WithDetail("length", 3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidLength) {
//		// handle
//	}
package error
