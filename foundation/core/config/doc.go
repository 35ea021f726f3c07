// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config decodes TOML and YAML configuration files into
//              typed structures and loads ordered key-value documents.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Typed decoding, ordered values, path discovery

/*
Package config provides configuration file handling for textkit.

The format is chosen from the file extension: .yaml and .yml are read as YAML,
everything else as TOML.

Typed decoding:

	var cfg MySettings
	if err := config.DecodeFile("textkit.toml", config.FormatAuto, &cfg); err != nil {
		return err
	}

Unknown keys are rejected with an INVALID_CONFIG error. A missing file yields
NOT_FOUND.

Ordered values:

	values, err := config.LoadValues("values.yaml")
	for key, value := range values.All() {
		fmt.Println(key, value)
	}

LoadValues keeps the document order of keys. Nested tables are flattened to
dotted keys, so

	[db]
	host = "localhost"

yields the key "db.host".

Discovery:

	path, err := config.FindConfigFile(config.DefaultDiscoveryOptions("textkit"))

searches ./textkit.toml, ./textkit.yaml, ./config.toml and so on, followed by
the same names in the user configuration directory.
*/
package config
