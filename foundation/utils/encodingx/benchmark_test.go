// File: benchmark_test.go
// Title: Performance Benchmarks for encodingx
// Description: Benchmarks for the encoders and decoders.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial benchmark implementation

package encodingx

import (
	"bytes"
	"testing"
)

var benchPayload = bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x3E, 0x3F}, 256)

func BenchmarkEncodeHex(b *testing.B) {
	b.SetBytes(int64(len(benchPayload)))
	for i := 0; i < b.N; i++ {
		_ = EncodeHex(benchPayload, Lower)
	}
}

func BenchmarkDecodeHex(b *testing.B) {
	encoded := EncodeHex(benchPayload, Upper)
	b.SetBytes(int64(len(encoded)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeHex(encoded, ReturnError)
	}
}

func BenchmarkEncodeBase64URL(b *testing.B) {
	b.SetBytes(int64(len(benchPayload)))
	for i := 0; i < b.N; i++ {
		_ = EncodeBase64URL(benchPayload, WithPadding())
	}
}

func BenchmarkDecodeBase64URL(b *testing.B) {
	encoded := EncodeBase64URL(benchPayload)
	b.SetBytes(int64(len(encoded)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeBase64URL(encoded, ReturnError)
	}
}
