// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration file
//              matching the configured base names and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mkerror "github.com/msto63/monkey/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Fail when no file is found
	Defaults   map[string]interface{}
}

// DefaultDiscoveryOptions returns options that look for monkey.toml or
// monkey.yaml in the working directory and in $HOME/.config/monkey
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "monkey"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"monkey"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "MONKEY",
	}
}

// Discover finds and loads the first matching configuration file. When no
// file exists and Required is false, an empty configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	normalize(&options)

	configPath, err := FindConfigFile(options)
	if err != nil {
		if !options.Required {
			cfg := Empty(options.EnvPrefix)
			if options.Defaults != nil {
				cfg.data = deepCopyMap(options.Defaults)
			}
			return cfg, nil
		}
		return nil, mkerror.New(fmt.Sprintf("no configuration file found in paths: %s",
			strings.Join(ListPossibleConfigFiles(options), ", "))).
			WithCode(mkerror.CodeNotFound).
			WithOperation("config.Discover")
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mkerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}

	return cfg, nil
}

// FindConfigFile returns the first existing configuration file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	normalize(&options)

	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mkerror.New("configuration file not found").
		WithCode(mkerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every path discovery would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

func normalize(options *DiscoveryOptions) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}
}
