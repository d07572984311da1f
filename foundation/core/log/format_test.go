// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "unexpected token")
	e.Timestamp = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	e.Session = "s1"
	e.Source = "stdin"
	e.Fields = Fields{"line": 3, "column": 7}
	return e
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := "12:30:00 [WRN] (session=s1,source=stdin) unexpected token [column=7 line=3]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatterErrorAndDuration(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")
	e.Duration = 1500 * time.Millisecond

	f := NewTextFormatter()
	f.DisableTimestamp = true
	out, _ := f.Format(e)

	s := string(out)
	if strings.HasPrefix(s, "12:30") {
		t.Error("timestamp should be disabled")
	}
	if !strings.Contains(s, `error="boom"`) || !strings.Contains(s, "duration=1.5s") {
		t.Errorf("Format() = %q", s)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("colored output = %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("uncolored output = %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, _ := NewLogfmtFormatter().Format(testEntry())
	want := `timestamp=2026-10-16T12:30:00Z level=warn message="unexpected token" session=s1 source="stdin" column=7 line=3` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatterEndsWithNewline(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "}\n") {
		t.Errorf("Format() = %q", out)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("FormatText should give *TextFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("unknown format should fall back to JSON")
	}
}
