// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first existing
//              configuration file in any supported format.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of file discovery
// - 2026-10-17 v0.2.0: Discovery only returns paths, loading moved to callers

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// DiscoveryOptions defines where and under which names configuration files
// are searched
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions returns options for a tool called name: the working
// directory followed by the user configuration directory.
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists and is a regular
// file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerrors.NotFound(mdwerrors.ModuleConfig, "discover", "configuration file").
		WithDetail("searchPaths", strings.Join(candidates, ", "))
}
