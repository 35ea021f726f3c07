// File: config.go
// Title: Format-Aware Configuration Decoding
// Description: Detects the configuration format from a file extension and
//              decodes TOML or YAML documents into typed targets with
//              structured textkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Reduced to typed decoding, generic getters removed

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat determines the configuration format from the file extension.
// Anything that is not .yaml or .yml is read as TOML.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ReadFile reads a configuration file. A missing file is reported as
// NOT_FOUND, any other failure as CONFIG_ERROR.
func ReadFile(filePath string) ([]byte, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "read", "filePath", filePath,
			"config file path can't be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.NotFound(mdwerrors.ModuleConfig, "read", filePath).
				WithDetail("path", filePath)
		}
		return nil, mdwerrors.ConfigError("read", filePath, err)
	}
	return content, nil
}

// DecodeFile reads filePath and decodes it into target. FormatAuto picks the
// format from the file extension.
func DecodeFile(filePath string, format Format, target interface{}) error {
	content, err := ReadFile(filePath)
	if err != nil {
		return err
	}

	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	if err := Decode(content, format, target); err != nil {
		return mdwerror.Wrap(err, "failed to parse config file").
			WithDetail("path", filePath)
	}
	return nil
}

// Decode decodes TOML or YAML content into target. Unknown keys are rejected.
func Decode(content []byte, format Format, target interface{}) error {
	switch format {
	case FormatTOML, FormatAuto:
		md, err := toml.Decode(string(content), target)
		if err != nil {
			return parseError(FormatTOML, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("decode").
				Messagef("unknown configuration key %s", undecoded[0].String()).
				Code(mdwerror.CodeInvalidConfig).
				Detail("key", undecoded[0].String()).
				Detail("format", FormatTOML.String()).
				Build()
		}
	case FormatYAML:
		if len(bytes.TrimSpace(content)) == 0 {
			return nil
		}
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(target); err != nil {
			return parseError(format, err)
		}
	default:
		return mdwerrors.InvalidArgument(mdwerrors.ModuleConfig, "decode", "format", format.String(),
			"unsupported configuration format")
	}
	return nil
}

func parseError(format Format, err error) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("decode").
		Messagef("%s parse error", strings.ToUpper(format.String())).
		Cause(err).
		Code(mdwerror.CodeInvalidConfig).
		Detail("format", format.String()).
		Severity(mdwerror.SeverityHigh).
		Build()
}
