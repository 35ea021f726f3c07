// ============================================================================
// textkit - Codec & Text Utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the command line loggers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name printed with every entry
	Name string

	// Log level (trace, debug, info, warn, error, audit)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Destination, stderr when nil
	Output io.Writer

	// Correlation ID stamped on every entry; generated when empty
	CorrelationID string

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// FromConfig derives the logger configuration from the textkit settings.
// verbose lowers the level to debug.
func FromConfig(name string, cfg *config.Config, verbose bool) LoggerConfig {
	loggerCfg := DefaultLoggerConfig(name)
	if cfg != nil {
		loggerCfg.Level = cfg.General.LogLevel
		loggerCfg.Format = cfg.General.LogFormat
	}
	if verbose {
		loggerCfg.Level = "debug"
		loggerCfg.EnableCaller = true
	}
	return loggerCfg
}

// NewLogger creates a foundation logger. Invalid level or format names fall
// back to info and text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithCorrelationID(correlationID)
}

// NewCorrelationID returns a fresh random correlation ID
func NewCorrelationID() string {
	return uuid.NewString()
}

// Pairs converts alternating keys and values to log fields. Non-string keys
// and a trailing key without value are dropped.
func Pairs(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
