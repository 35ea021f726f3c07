// File: doc.go
// Title: Package Documentation for encodingx
// Description: Package encodingx provides RFC 4648 Base64, Base64URL and hex
//              codecs with a caller-selected failure policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

// Package encodingx provides textual byte encodings for the textkit foundation.
//
// # Encodings
//
//   - Base64: standard alphabet with padding (RFC 4648 section 4)
//   - Base64URL: URL and filename safe alphabet (RFC 4648 section 5); padding is
//     removed by default or kept percent-encoded as %3D
//   - Hex: two characters per byte, high nibble first, upper or lower case
//
// # Decode Policy
//
// Every decoder takes a DecodePolicy. With ReturnError a malformed input fails
// with a *mdwerror.Error carrying one of the codes INVALID_ENCODING,
// ILLEGAL_CHARACTER or INVALID_LENGTH. With ReturnNoValue the decoder returns
// (nil, nil) instead. A successful decode never returns nil: decoding the empty
// string yields an empty, non-nil slice.
//
//	data, err := encodingx.DecodeHex("0xCAFE", encodingx.ReturnError)
//	if mdwerror.HasCode(err, mdwerror.CodeIllegalCharacter) {
//		...
//	}
//
//	data, _ = encodingx.DecodeBase64URL(token, encodingx.ReturnNoValue)
//	if data == nil {
//		// not a Base64URL string
//	}
//
// All functions are pure and safe for concurrent use.
package encodingx
