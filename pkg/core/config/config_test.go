package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mkconfig "github.com/msto63/monkey/foundation/core/config"
	mkerror "github.com/msto63/monkey/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.REPL.Prompt != ">> " {
		t.Errorf("REPL.Prompt = %q, want \">> \"", cfg.REPL.Prompt)
	}
	if cfg.REPL.GreetingEnv != "USER" {
		t.Errorf("REPL.GreetingEnv = %v, want USER", cfg.REPL.GreetingEnv)
	}
	if cfg.REPL.FallbackName != "man/woman" {
		t.Errorf("REPL.FallbackName = %v, want man/woman", cfg.REPL.FallbackName)
	}
	if cfg.REPL.ParseMode {
		t.Error("REPL.ParseMode should default to false")
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should default to false")
	}
	if cfg.History.Path != "/home/tester/.config/monkey/history.db" {
		t.Errorf("History.Path = %v", cfg.History.Path)
	}
	if cfg.History.BusyTimeout.Duration != 5*time.Second {
		t.Errorf("History.BusyTimeout = %v, want 5s", cfg.History.BusyTimeout.Duration)
	}
	if cfg.Parser.MaxInputLength != 64*1024 {
		t.Errorf("Parser.MaxInputLength = %v, want 65536", cfg.Parser.MaxInputLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "monkey.toml")

	content := `
[general]
log_level = "debug"

[repl]
prompt = "monkey> "
parse_mode = true

[history]
enabled = true
path = "` + filepath.Join(tmpDir, "history.db") + `"
busy_timeout = "250ms"

[parser]
max_input_length = 1024
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	// not in the file
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.REPL.Prompt != "monkey> " {
		t.Errorf("REPL.Prompt = %q", cfg.REPL.Prompt)
	}
	if !cfg.REPL.ParseMode {
		t.Error("REPL.ParseMode = false, want true")
	}
	if !cfg.History.Enabled || cfg.History.Path != filepath.Join(tmpDir, "history.db") {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.History.BusyTimeout.Duration != 250*time.Millisecond {
		t.Errorf("History.BusyTimeout = %v, want 250ms", cfg.History.BusyTimeout.Duration)
	}
	if cfg.Parser.MaxInputLength != 1024 {
		t.Errorf("Parser.MaxInputLength = %v, want 1024", cfg.Parser.MaxInputLength)
	}
}

func TestLoad_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "monkey.yaml")
	content := "repl:\n  prompt: \"? \"\n  fallback_name: friend\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.REPL.Prompt != "? " || cfg.REPL.FallbackName != "friend" {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "monkey.toml")
	if err := os.WriteFile(configPath, []byte("[repl]\nprompt = \"file> \"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("MONKEY_REPL_PROMPT", "env> ")
	t.Setenv("MONKEY_PARSER_MAX_INPUT_LENGTH", "77")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.REPL.Prompt != "env> " {
		t.Errorf("REPL.Prompt = %q, want env override", cfg.REPL.Prompt)
	}
	if cfg.Parser.MaxInputLength != 77 {
		t.Errorf("Parser.MaxInputLength = %d, want 77", cfg.Parser.MaxInputLength)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !mkerror.HasCode(err, mkerror.CodeNotFound) {
		t.Errorf("missing file: error = %v, want NOT_FOUND", err)
	}

	invalid := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(invalid, []byte("[repl\nprompt ="), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(invalid)
	if !mkerror.HasCode(err, mkerror.CodeInvalidConfig) {
		t.Errorf("invalid file: error = %v, want INVALID_CONFIG", err)
	}
}

func TestFromSource_Invalid(t *testing.T) {
	src, err := mkconfig.LoadFromString("[parser]\nmax_input_length = -5\n[history]\nenabled = true\npath = \" \"\n", mkconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	_, err = FromSource(src)
	if err == nil {
		t.Fatal("FromSource() error = nil, want validation error")
	}
	if !mkerror.HasCode(err, mkerror.CodeInvalidConfig) {
		t.Errorf("code = %v, want INVALID_CONFIG", mkerror.GetCode(err))
	}
	for _, want := range []string{"max_input_length", "history.path"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nlog_format = \"json\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
}

func TestLoadFromEnv_NoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	chdirForTest(t, t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.REPL.Prompt != ">> " {
		t.Errorf("REPL.Prompt = %q, want default", cfg.REPL.Prompt)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "monkey.toml")

	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[repl]", `prompt = ">> "`, `busy_timeout = "5s"`, "$HOME/.config/monkey/history.db"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("written config missing %q:\n%s", want, data)
		}
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written default error = %v", err)
	}
	if cfg.REPL.FallbackName != "man/woman" {
		t.Errorf("REPL.FallbackName = %v", cfg.REPL.FallbackName)
	}

	if err := WriteDefault(path, false); !mkerror.HasCode(err, mkerror.CodeInvalidInput) {
		t.Errorf("second WriteDefault() error = %v, want INVALID_INPUT", err)
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(overwrite) error = %v", err)
	}
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore Chdir(%q): %v", prev, err)
		}
	})
}
