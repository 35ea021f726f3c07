// ============================================================================
// textkit - Codec & Text Utilities
// ============================================================================
//
// Package:     config
// Description: Typed configuration of the textkit command line tool
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"strconv"
	"strings"

	mdwconfig "github.com/msto63/textkit/foundation/core/config"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/encodingx"
	"github.com/msto63/textkit/foundation/utils/mapx"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TEXTKIT_"

// EnvConfig names the variable pointing at a configuration file
const EnvConfig = EnvPrefix + "CONFIG"

// Config holds the complete textkit configuration
type Config struct {
	General      GeneralConfig      `toml:"general" yaml:"general"`
	Hex          HexConfig          `toml:"hex" yaml:"hex"`
	Base64URL    Base64URLConfig    `toml:"base64url" yaml:"base64url"`
	Join         JoinConfig         `toml:"join" yaml:"join"`
	Truncate     TruncateConfig     `toml:"truncate" yaml:"truncate"`
	Placeholders PlaceholdersConfig `toml:"placeholders" yaml:"placeholders"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// HexConfig holds hex encoding settings
type HexConfig struct {
	Case string `toml:"case" yaml:"case"`
}

// Base64URLConfig holds Base64URL encoding settings
type Base64URLConfig struct {
	Padding bool `toml:"padding" yaml:"padding"`
}

// JoinConfig holds join settings. An empty EndDelimiter falls back to
// Delimiter.
type JoinConfig struct {
	Delimiter    string `toml:"delimiter" yaml:"delimiter"`
	EndDelimiter string `toml:"end_delimiter" yaml:"end_delimiter"`
}

// TruncateConfig holds truncate settings
type TruncateConfig struct {
	Symbol string `toml:"symbol" yaml:"symbol"`
}

// PlaceholdersConfig holds the markers around placeholder keys
type PlaceholdersConfig struct {
	Prefix string `toml:"prefix" yaml:"prefix"`
	Suffix string `toml:"suffix" yaml:"suffix"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "console",
		},
		Hex: HexConfig{
			Case: "upper",
		},
		Join: JoinConfig{
			Delimiter: stringx.DefaultDelimiter,
		},
		Truncate: TruncateConfig{
			Symbol: stringx.EllipsisASCII,
		},
		Placeholders: PlaceholdersConfig{
			Prefix: "${",
			Suffix: "}",
		},
	}
}

// Load reads a TOML or YAML file on top of the defaults, applies environment
// overrides and validates the result
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := Default()
	if err := mdwconfig.DecodeFile(path, mdwconfig.FormatAuto, cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by TEXTKIT_CONFIG, else the first file
// found in the default locations. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	if path, err := mdwconfig.FindConfigFile(mdwconfig.DefaultDiscoveryOptions("textkit")); err == nil {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadValues reads a placeholder values file in document order
func LoadValues(path string) (*mapx.Ordered[string, any], error) {
	return mdwconfig.LoadValues(os.ExpandEnv(path))
}

// applyEnv overrides settings from TEXTKIT_* variables
func (c *Config) applyEnv() error {
	overrides := []struct {
		name   string
		target *string
	}{
		{"LOG_LEVEL", &c.General.LogLevel},
		{"LOG_FORMAT", &c.General.LogFormat},
		{"HEX_CASE", &c.Hex.Case},
		{"JOIN_DELIMITER", &c.Join.Delimiter},
		{"JOIN_END_DELIMITER", &c.Join.EndDelimiter},
		{"TRUNCATE_SYMBOL", &c.Truncate.Symbol},
		{"PLACEHOLDER_PREFIX", &c.Placeholders.Prefix},
		{"PLACEHOLDER_SUFFIX", &c.Placeholders.Suffix},
	}
	for _, s := range overrides {
		if value, ok := os.LookupEnv(EnvPrefix + s.name); ok {
			*s.target = value
		}
	}

	if value, ok := os.LookupEnv(EnvPrefix + "BASE64URL_PADDING"); ok {
		padding, err := strconv.ParseBool(value)
		if err != nil {
			return mdwerrors.InvalidConfig(EnvPrefix+"BASE64URL_PADDING", value, "a boolean")
		}
		c.Base64URL.Padding = padding
	}
	return nil
}

// Validate checks enumerated settings and the placeholder markers
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerrors.InvalidConfig("general.log_level", c.General.LogLevel,
			"one of trace, debug, info, warn, error, fatal, audit")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerrors.InvalidConfig("general.log_format", c.General.LogFormat,
			"one of json, text, console, logfmt")
	}
	if _, err := encodingx.ParseLetterCase(c.Hex.Case); err != nil {
		return mdwerrors.InvalidConfig("hex.case", c.Hex.Case, "upper or lower")
	}
	if strings.TrimSpace(c.Placeholders.Prefix+c.Placeholders.Suffix) == "" {
		return mdwerrors.InvalidConfig("placeholders.prefix", c.Placeholders.Prefix,
			"a non-empty prefix or suffix")
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() mdwlog.Level {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return mdwlog.DefaultLevel()
	}
	return level
}

// LetterCase returns the configured hex letter case
func (c *Config) LetterCase() encodingx.LetterCase {
	letterCase, err := encodingx.ParseLetterCase(c.Hex.Case)
	if err != nil {
		return encodingx.Upper
	}
	return letterCase
}

// JoinOptions returns the join settings as stringx options
func (c *Config) JoinOptions() []stringx.JoinOption {
	opts := []stringx.JoinOption{stringx.WithDelimiter(c.Join.Delimiter)}
	if c.Join.EndDelimiter != "" {
		opts = append(opts, stringx.WithEndDelimiter(c.Join.EndDelimiter))
	}
	return opts
}
