// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the application loggers
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mklog "github.com/msto63/monkey/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, shown as {name} in text output
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr, so stdout stays free for results)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *mklog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mklog.NewWithConfig(mklog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewCLILogger creates the logger used by the command line tool. Verbose
// lowers the level to debug regardless of the configured level.
func NewCLILogger(level, format string, verbose bool) *mklog.Logger {
	cfg := DefaultLoggerConfig("monkey")
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	if verbose {
		cfg.Level = "debug"
	}
	return NewLogger(cfg)
}

// Install creates a logger from cfg and makes it the process default, so
// packages that log through mklog.GetDefault pick it up
func Install(cfg LoggerConfig) *mklog.Logger {
	logger := NewLogger(cfg)
	mklog.SetDefault(logger)
	return logger
}

// parseLevel converts a string level to mklog.Level, falling back to warn
func parseLevel(level string) mklog.Level {
	parsed, err := mklog.ParseLevel(level)
	if err != nil {
		return mklog.LevelWarn
	}
	return parsed
}

// parseFormat converts a string format to mklog.Format, falling back to text
func parseFormat(format string) mklog.Format {
	parsed, _ := mklog.ParseFormat(format)
	return parsed
}
