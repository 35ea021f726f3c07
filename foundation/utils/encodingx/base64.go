// File: base64.go
// Title: Base64 and Base64URL Codec
// Description: Standard Base64 and URL-safe Base64 encoding with structural
//              classification of malformed Base64URL input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Classify Base64URL failures by scanning the input

package encodingx

import (
	"encoding/base64"
	stderrors "errors"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// percentPad is the percent-encoded form of the Base64 padding character
const percentPad = "%3D"

// Base64URLOption configures EncodeBase64URL
type Base64URLOption func(*base64URLConfig)

type base64URLConfig struct {
	padding bool
}

// WithPadding keeps the padding, written as %3D so the result stays URL safe
func WithPadding() Base64URLOption {
	return func(c *base64URLConfig) {
		c.padding = true
	}
}

// EncodeBase64 encodes b with the standard padded alphabet
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes standard padded Base64. CR and LF are ignored.
func DecodeBase64(s string, policy DecodePolicy) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		mdwErr := errors.InvalidEncoding(errors.ModuleEncodingx, "decode_base64", s, errors.MsgBase64Invalid, err)
		var corrupt base64.CorruptInputError
		if stderrors.As(err, &corrupt) {
			mdwErr = mdwErr.WithDetail("offset", int64(corrupt))
		}
		return policy.reject(mdwErr)
	}
	return data, nil
}

// EncodeBase64URL encodes b with the URL and filename safe alphabet. Padding
// is dropped unless WithPadding is given.
func EncodeBase64URL(b []byte, opts ...Base64URLOption) string {
	var cfg base64URLConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.padding {
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return strings.ReplaceAll(base64.URLEncoding.EncodeToString(b), "=", percentPad)
}

// DecodeBase64URL decodes Base64URL with or without padding. Padding may be
// literal or percent-encoded. Characters from the standard alphabet ('+', '/')
// are rejected.
func DecodeBase64URL(s string, policy DecodePolicy) ([]byte, error) {
	const op = "decode_base64url"

	if s == "" {
		return []byte{}, nil
	}

	if i := strings.IndexAny(s, "+/"); i >= 0 {
		return policy.reject(errors.IllegalCharacter(errors.ModuleEncodingx, op, s, i, errors.MsgBase64URLIllegalChar))
	}

	padded, pos, ok := padBase64URL(s)
	if !ok {
		return policy.reject(errors.IllegalCharacter(errors.ModuleEncodingx, op, s, pos, errors.MsgBase64URLIllegalChar))
	}

	data, err := base64.URLEncoding.DecodeString(padded)
	if err != nil {
		return policy.reject(errors.InvalidEncoding(errors.ModuleEncodingx, op, s, errors.MsgBase64URLInvalid, err))
	}
	return data, nil
}

// padBase64URL resolves percent-encoded padding and appends the missing
// padding. On failure it returns the offset of the offending character in s,
// or -1 when only the padding total is wrong.
func padBase64URL(s string) (string, int, bool) {
	var b strings.Builder
	b.Grow(len(s) + 3)

	padding := 0
	for i := 0; i < len(s); {
		start := i
		c := s[i]
		i++
		if c == '%' && strings.HasPrefix(s[start:], percentPad) {
			c = '='
			i = start + len(percentPad)
		}

		switch {
		case c == '=':
			padding++
			if padding > 2 {
				return "", start, false
			}
		case padding > 0:
			// data after padding
			return "", start, false
		case !isBase64URLChar(c):
			return "", start, false
		}
		b.WriteByte(c)
	}

	missing := (4 - b.Len()%4) % 4
	if padding+missing > 2 {
		return "", -1, false
	}
	b.WriteString("=="[:missing])
	return b.String(), -1, true
}

func isBase64URLChar(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_'
}
