// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     config
// Description: Typed application configuration on top of foundation config
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	mkconfig "github.com/msto63/monkey/foundation/core/config"
	mkerror "github.com/msto63/monkey/foundation/core/error"
)

// EnvPrefix is the prefix of environment overrides, e.g. MONKEY_REPL_PROMPT
const EnvPrefix = "MONKEY"

// EnvConfigPath names an explicit config file and skips discovery
const EnvConfigPath = "MONKEY_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	REPL    REPLConfig    `toml:"repl"`
	History HistoryConfig `toml:"history"`
	Parser  ParserConfig  `toml:"parser"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	Prompt       string `toml:"prompt"`
	GreetingEnv  string `toml:"greeting_env"`
	FallbackName string `toml:"fallback_name"`
	ParseMode    bool   `toml:"parse_mode"`
}

// HistoryConfig holds settings of the SQLite line history
type HistoryConfig struct {
	Enabled     bool     `toml:"enabled"`
	Path        string   `toml:"path"`
	BusyTimeout Duration `toml:"busy_timeout"`
}

// ParserConfig holds language front end limits
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Environment variables
// with prefix MONKEY_ override file values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	src, err := mkconfig.LoadWithOptions(path, mkconfig.LoadOptions{
		Format:    mkconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, or discovers
// monkey.toml / monkey.yaml in the working directory and
// $HOME/.config/monkey. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	src, err := mkconfig.Discover(mkconfig.DefaultDiscoveryOptions())
	if err != nil {
		return nil, err
	}
	return FromSource(src)
}

// FromSource builds a typed configuration from a foundation config. Missing
// keys keep their defaults.
func FromSource(src *mkconfig.Config) (*Config, error) {
	c := Default()

	c.General.LogLevel = src.GetString("general.log_level", c.General.LogLevel)
	c.General.LogFormat = src.GetString("general.log_format", c.General.LogFormat)

	c.REPL.Prompt = src.GetString("repl.prompt", c.REPL.Prompt)
	c.REPL.GreetingEnv = src.GetString("repl.greeting_env", c.REPL.GreetingEnv)
	c.REPL.FallbackName = src.GetString("repl.fallback_name", c.REPL.FallbackName)
	c.REPL.ParseMode = src.GetBool("repl.parse_mode", c.REPL.ParseMode)

	c.History.Enabled = src.GetBool("history.enabled", c.History.Enabled)
	c.History.Path = src.GetString("history.path", c.History.Path)
	c.History.BusyTimeout.Duration = src.GetDuration("history.busy_timeout", c.History.BusyTimeout.Duration)

	c.Parser.MaxInputLength = src.GetInt("parser.max_input_length", c.Parser.MaxInputLength)

	c.expandEnvVars()

	if err := c.Validate(); err != nil {
		return nil, mkerror.Wrap(err, "invalid configuration").
			WithDetail("filePath", src.FilePath())
	}
	return c, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var problems []string

	if c.REPL.Prompt == "" {
		problems = append(problems, "repl.prompt must not be empty")
	}
	if c.Parser.MaxInputLength < 0 {
		problems = append(problems, "parser.max_input_length must not be negative")
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		problems = append(problems, "history.path is required when history is enabled")
	}
	if c.History.BusyTimeout.Duration < 0 {
		problems = append(problems, "history.busy_timeout must not be negative")
	}

	if len(problems) > 0 {
		return mkerror.New(strings.Join(problems, "; ")).
			WithCode(mkerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("problems", len(problems))
	}
	return nil
}

// WriteDefault writes the default configuration as TOML to path. An
// existing file is only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return mkerror.Wrap(err, "failed to create config directory").
			WithCode(mkerror.CodeIOError).
			WithOperation("config.WriteDefault")
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return mkerror.New(fmt.Sprintf("config file already exists: %s", path)).
				WithCode(mkerror.CodeInvalidInput).
				WithOperation("config.WriteDefault").
				WithDetail("filePath", path)
		}
		return mkerror.Wrap(err, "failed to create config file").
			WithCode(mkerror.CodeIOError).
			WithOperation("config.WriteDefault")
	}
	defer f.Close()

	cfg := Default()
	// keep the $HOME reference portable
	cfg.History.Path = defaultHistoryPath

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return mkerror.Wrap(err, "failed to encode config").
			WithCode(mkerror.CodeIOError).
			WithOperation("config.WriteDefault")
	}
	return nil
}

const defaultHistoryPath = "$HOME/.config/monkey/history.db"

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.GreetingEnv == "" {
		c.REPL.GreetingEnv = "USER"
	}
	if c.REPL.FallbackName == "" {
		c.REPL.FallbackName = "man/woman"
	}

	// History
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.BusyTimeout.Duration == 0 {
		c.History.BusyTimeout.Duration = 5 * time.Second
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 64 * 1024
	}

	c.expandEnvVars()
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}
