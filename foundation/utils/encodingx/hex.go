// File: hex.go
// Title: Hex Codec
// Description: Table driven hex encoding and decoding with an optional 0x
//              prefix on input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package encodingx

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// hexPrefix is stripped from decoder input. Only the lower-case form is recognised.
const hexPrefix = "0x"

const invalidNibble = 0xFF

var hexDigits = [...]string{
	Upper: "0123456789ABCDEF",
	Lower: "0123456789abcdef",
}

// nibbleValues maps an ASCII character to its nibble value, or invalidNibble
var nibbleValues = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidNibble
	}
	for i := 0; i < 16; i++ {
		table[hexDigits[Upper][i]] = byte(i)
		table[hexDigits[Lower][i]] = byte(i)
	}
	return table
}()

// EncodeHex encodes b as hex, two characters per byte. Any letter case other
// than Lower produces upper-case output.
func EncodeHex(b []byte, letterCase LetterCase) string {
	if len(b) == 0 {
		return ""
	}

	digits := hexDigits[Upper]
	if letterCase == Lower {
		digits = hexDigits[Lower]
	}

	buf := make([]byte, len(b)*2)
	for i, v := range b {
		buf[i*2] = digits[v>>4]
		buf[i*2+1] = digits[v&0x0F]
	}
	return string(buf)
}

// DecodeHex decodes a case-insensitive hex string with an optional 0x prefix
func DecodeHex(s string, policy DecodePolicy) ([]byte, error) {
	const op = "decode_hex"

	if s == "" {
		return []byte{}, nil
	}

	digits := strings.TrimPrefix(s, hexPrefix)
	offset := len(s) - len(digits)

	// parity counts characters; any non-ASCII byte fails the nibble lookup
	// before the scan can run past the end
	length := utf8.RuneCountInString(digits)
	if length%2 != 0 {
		return policy.reject(errors.InvalidLength(errors.ModuleEncodingx, op, s, length, errors.MsgHexInvalidLength))
	}

	out := make([]byte, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		hi := nibbleValues[digits[i]]
		if hi == invalidNibble {
			return policy.reject(errors.IllegalCharacter(errors.ModuleEncodingx, op, s, offset+i, errors.MsgHexIllegalCharacter))
		}
		lo := nibbleValues[digits[i+1]]
		if lo == invalidNibble {
			return policy.reject(errors.IllegalCharacter(errors.ModuleEncodingx, op, s, offset+i+1, errors.MsgHexIllegalCharacter))
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}
