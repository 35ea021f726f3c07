// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string transformations and sequence
//              joining for the textkit foundation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core string utilities
// - 2026-10-16 v0.2.0: Join, EnsureSuffix and SubstitutePlaceholders

// Package stringx provides string transformations that the standard strings
// package does not cover.
//
// # Transformations
//
//   - Truncate: bounded length with a truncation symbol, counted in runes
//   - EnsureSuffix: append a symbol unless already present
//   - SubstitutePlaceholders: replace prefix+key+suffix markers from an
//     ordered key/value map
//
// Argument contract violations are reported as *mdwerror.Error with code
// INVALID_ARGUMENT and a "param" detail naming the offending parameter.
//
//	s, err := stringx.Truncate("1234567890", 6, "--") // "1234--"
//
//	values := mapx.NewOrdered[string, any]()
//	values.Set("name", "textkit")
//	s, err = stringx.SubstitutePlaceholders("Hello {{name}}", values, "{{", "}}")
//
// # Joining
//
// Join consumes any iter.Seq exactly once and places an optional end
// delimiter between the last two elements:
//
//	stringx.JoinSlice([]int{1, 2, 3}, stringx.WithEndDelimiter(" and "))
//	// "1, 2 and 3"
//
// Empty strings stand in for absent values throughout the package.
package stringx
