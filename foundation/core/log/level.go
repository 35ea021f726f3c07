// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with standard log levels
// - 2026-10-16 v0.2.0: Parse failures reported as textkit errors

package log

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors the program cannot continue from
	LevelFatal

	// LevelAudit entries are written regardless of the minimum level
	LevelAudit
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelAudit:
		return "audit"
	default:
		return "unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	case LevelAudit:
		return "AUD"
	default:
		return "???"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, errors.InvalidArgument(errors.ModuleLog, "parse_level", "level", level,
			fmt.Sprintf("invalid log level %q", level))
	}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
