// ============================================================================
// textkit - Codec & Text Utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for textkit and its packages
const (
	// Release version
	Platform = "0.3.0"

	// Package versions
	Encodingx = "0.3.0"
	Stringx   = "0.3.0"
	Mapx      = "0.3.0"
	Config    = "0.2.0"
	Log       = "0.2.0"
	CLI       = "0.3.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/textkit/pkg/core/version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given package name
func ComponentVersion(name string) string {
	switch name {
	case "encodingx":
		return Encodingx
	case "stringx":
		return Stringx
	case "mapx":
		return Mapx
	case "config":
		return Config
	case "log":
		return Log
	case "cli":
		return CLI
	default:
		return Platform
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("textkit %s (commit %s, built %s, %s %s/%s)",
		Platform, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
