// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration files and
//              provides dot-path access with environment overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config loads configuration for the Monkey tools.

Files are TOML (default) or YAML, selected by extension. Values are read
with dot-path getters that take an optional default:

	cfg, err := mkconfig.Load("monkey.toml")
	if err != nil {
		return err
	}
	prompt := cfg.GetString("repl.prompt", ">> ")
	limit := cfg.GetInt("parser.max_input_length", 65536)

# Environment Overrides

With an environment prefix, every getter first consults the variable built
from the prefix and the upper-cased key, dots replaced by underscores:

	cfg, _ := mkconfig.LoadWithOptions("monkey.toml", mkconfig.LoadOptions{
		EnvPrefix: "MONKEY",
	})
	// MONKEY_REPL_PROMPT overrides repl.prompt
	cfg.GetString("repl.prompt")

# Discovery

Discover searches a list of directories for the first matching file:

	cfg, err := mkconfig.Discover(mkconfig.DefaultDiscoveryOptions())

A missing file is not an error unless Required is set; the result is then an
empty configuration whose getters return their defaults.

# Errors

All failures are core errors with CodeNotFound, CodeConfigError or
CodeInvalidConfig, carrying the operation and file path as details.
*/
package config
