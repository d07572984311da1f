// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, getters, environment overrides and discovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	mkerror "github.com/msto63/monkey/foundation/core/error"
)

const sampleTOML = `
[general]
log_level = "debug"

[repl]
prompt = "monkey> "
parse_mode = true

[parser]
max_input_length = 1024
timeout = "2s"
keywords = ["fn", "let"]
`

const sampleYAML = `
general:
  log_level: info
repl:
  prompt: "> "
  parse_mode: false
parser:
  max_input_length: 2048
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "monkey.toml", sampleTOML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v", cfg.Format())
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}
	if got := cfg.GetString("repl.prompt"); got != "monkey> " {
		t.Errorf("repl.prompt = %q", got)
	}
	if got := cfg.GetBool("repl.parse_mode"); !got {
		t.Error("repl.parse_mode should be true")
	}
	if got := cfg.GetInt("parser.max_input_length"); got != 1024 {
		t.Errorf("parser.max_input_length = %d", got)
	}
	if got := cfg.GetDuration("parser.timeout"); got != 2*time.Second {
		t.Errorf("parser.timeout = %v", got)
	}
	if got := cfg.GetStringSlice("parser.keywords"); !reflect.DeepEqual(got, []string{"fn", "let"}) {
		t.Errorf("parser.keywords = %v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "monkey.yaml", sampleYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v", cfg.Format())
	}
	if got := cfg.GetString("general.log_level"); got != "info" {
		t.Errorf("general.log_level = %q", got)
	}
	if got := cfg.GetInt("parser.max_input_length"); got != 2048 {
		t.Errorf("parser.max_input_length = %d", got)
	}
	if cfg.GetBool("repl.parse_mode", true) {
		t.Error("repl.parse_mode should be false")
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("missing.key", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("missing.key", true); !got {
		t.Error("GetBool default should be true")
	}
	if got := cfg.GetString("repl.prompt.deeper"); got != "" {
		t.Errorf("path through a scalar = %q", got)
	}
	if cfg.Has("missing.key") || !cfg.Has("repl.prompt") {
		t.Error("Has() mismatch")
	}
}

func TestLoadOptionsDefaultsMerge(t *testing.T) {
	path := writeFile(t, t.TempDir(), "monkey.toml", "[repl]\nprompt = \"$ \"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"repl": map[string]interface{}{"prompt": ">> ", "parse_mode": true},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("repl.prompt"); got != "$ " {
		t.Errorf("file value should win, got %q", got)
	}
	if !cfg.GetBool("repl.parse_mode") {
		t.Error("nested default should survive the merge")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	env := map[string]string{
		"MONKEY_REPL_PROMPT":             "env> ",
		"MONKEY_PARSER_MAX_INPUT_LENGTH": "99",
		"MONKEY_PARSER_KEYWORDS":         "if, else",
	}
	cfg = cfg.WithEnvPrefix("monkey")
	cfg.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	if got := cfg.EnvKey("repl.prompt"); got != "MONKEY_REPL_PROMPT" {
		t.Errorf("EnvKey() = %q", got)
	}
	if got := cfg.GetString("repl.prompt"); got != "env> " {
		t.Errorf("repl.prompt = %q", got)
	}
	if got := cfg.GetInt("parser.max_input_length"); got != 99 {
		t.Errorf("parser.max_input_length = %d", got)
	}
	if got := cfg.GetStringSlice("parser.keywords"); !reflect.DeepEqual(got, []string{"if", "else"}) {
		t.Errorf("parser.keywords = %v", got)
	}
	if got := cfg.GetString("general.log_level"); got != "debug" {
		t.Errorf("unset variable should not override, got %q", got)
	}
}

func TestNoPrefixIgnoresEnvironment(t *testing.T) {
	t.Setenv("REPL_PROMPT", "leak")
	cfg, _ := LoadFromString(sampleTOML, FormatTOML)
	if got := cfg.GetString("repl.prompt"); got != "monkey> " {
		t.Errorf("repl.prompt = %q", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty("")
	cfg.Set("history.path", "/tmp/h.db")
	cfg.Set("history.enabled", true)

	if got := cfg.GetString("history.path"); got != "/tmp/h.db" {
		t.Errorf("history.path = %q", got)
	}

	all := cfg.GetAll()
	all["history"].(map[string]interface{})["path"] = "changed"
	if got := cfg.GetString("history.path"); got != "/tmp/h.db" {
		t.Error("GetAll() must return a deep copy")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[repl\nprompt=")

	tests := []struct {
		name string
		path string
		code mkerror.Code
	}{
		{"blank path", "  ", mkerror.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "nope.toml"), mkerror.CodeNotFound},
		{"invalid toml", bad, mkerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mkerror.HasCode(err, tt.code) {
				t.Errorf("error %v does not carry %s", err, tt.code)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "monkey.yaml", sampleYAML)

	opts := DiscoveryOptions{
		Paths:      []string{first, second},
		Filenames:  []string{"monkey"},
		Extensions: []string{".toml", ".yaml"},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !strings.HasSuffix(cfg.FilePath(), "monkey.yaml") {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}

	writeFile(t, first, "monkey.toml", sampleTOML)
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePath() != filepath.Join(first, "monkey.toml") {
		t.Errorf("earlier path should win, got %q", cfg.FilePath())
	}
}

func TestDiscoverMissing(t *testing.T) {
	opts := DiscoveryOptions{Paths: []string{t.TempDir()}, Filenames: []string{"monkey"}}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("optional discovery failed: %v", err)
	}
	if cfg.GetString("repl.prompt", ">> ") != ">> " {
		t.Error("empty config should return defaults")
	}

	opts.Required = true
	if _, err := Discover(opts); !mkerror.HasCode(err, mkerror.CodeNotFound) {
		t.Errorf("required discovery error = %v", err)
	}
}

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"a", "b"},
		Filenames:  []string{"monkey"},
		Extensions: []string{".toml", ".yaml"},
	})
	want := []string{
		filepath.Join("a", "monkey.toml"),
		filepath.Join("a", "monkey.yaml"),
		filepath.Join("b", "monkey.toml"),
		filepath.Join("b", "monkey.yaml"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPossibleConfigFiles() = %v, want %v", got, want)
	}
}
