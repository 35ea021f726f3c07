// File: policy.go
// Title: Decode Policy and Letter Case
// Description: Options shared by the codecs: how a decoder reports malformed
//              input and which alphabet case the hex encoder emits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package encodingx

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// DecodePolicy selects how a decoder reports malformed input
type DecodePolicy int

const (
	// ReturnNoValue returns (nil, nil) for malformed input
	ReturnNoValue DecodePolicy = iota
	// ReturnError returns a classified *mdwerror.Error
	ReturnError
)

// String returns the string representation of the policy
func (p DecodePolicy) String() string {
	switch p {
	case ReturnNoValue:
		return "no-value"
	case ReturnError:
		return "error"
	default:
		return fmt.Sprintf("DecodePolicy(%d)", int(p))
	}
}

// reject applies the policy to a decode failure
func (p DecodePolicy) reject(err *mdwerror.Error) ([]byte, error) {
	if p == ReturnError {
		return nil, err
	}
	return nil, nil
}

// LetterCase selects the alphabet case of hex output
type LetterCase int

const (
	Upper LetterCase = iota
	Lower
)

// String returns the string representation of the letter case
func (c LetterCase) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("LetterCase(%d)", int(c))
	}
}

// ParseLetterCase parses "upper" or "lower", ignoring case
func ParseLetterCase(s string) (LetterCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return Upper, errors.InvalidArgument(errors.ModuleEncodingx, "parse_letter_case",
			"letterCase", s, fmt.Sprintf("unknown letter case %q, expected upper or lower", s))
	}
}
