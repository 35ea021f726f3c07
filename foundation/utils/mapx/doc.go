// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides an insertion-ordered generic map.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-15 v0.3.0: Ordered map replaces the unordered helpers

// Package mapx provides map types that Go's built-in map does not cover.
//
// Ordered remembers the order in which keys were first set. Ranging over it
// with All visits entries in that order, which makes results that depend on
// iteration order reproducible:
//
//	values := mapx.NewOrdered[string, any]()
//	values.Set("name", "textkit")
//	values.Set("version", 1)
//
//	for key, value := range values.All() {
//		fmt.Println(key, value)
//	}
//
// Setting an existing key replaces its value but keeps its position. Ordered
// is not safe for concurrent mutation.
package mapx
