// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping, codes and serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should be set")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("line %d: %s", 3, "bad")
	if err.Error() != "line 3: bad" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	base := fmt.Errorf("disk full")
	err := Wrap(base, "write history")

	if err.Error() != "write history: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.RootCause() != base {
		t.Errorf("RootCause() = %v", err.RootCause())
	}
	if err.Message() != "write history" {
		t.Errorf("Message() = %q", err.Message())
	}
}

func TestWrapInheritsCode(t *testing.T) {
	inner := New("unexpected token").WithCode(CodeSyntax).WithDetail("line", 2)
	outer := Wrap(inner, "parse input")

	if outer.Code() != CodeSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["line"] != 2 {
		t.Errorf("Details() = %v", outer.Details())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeLexical, SeverityLow},
		{CodeStorageError, SeverityHigh},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeIOError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestExplicitSeverityIsKept(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": "two"})
	details := err.Details()
	details["a"] = 99

	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("bad config").WithCode(CodeInvalidConfig)
	chain := fmt.Errorf("startup: %w", inner)

	if !HasCode(chain, CodeInvalidConfig) {
		t.Error("HasCode should find code through fmt wrapping")
	}
	if HasCode(chain, CodeSyntax) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if GetCode(chain) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v", GetCode(chain))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on a plain error should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("eof"), "read line").
		WithCode(CodeIOError).
		WithOperation("repl.read").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: read line",
		"Code: IO_ERROR",
		"Operation: repl.read",
		"Details: {a=1, b=2}",
		"Cause: eof",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeSyntax).
		WithOperation("parse").
		WithDetail("column", 7)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal failed: %v", jerr)
	}

	if decoded["code"] != "SYNTAX_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "parse" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCodeProperties(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeSyntax, true, "language", 2},
		{CodeLexical, true, "language", 2},
		{CodeConfigError, true, "configuration", 3},
		{CodeInvalidInput, true, "validation", 4},
		{CodeNotFound, true, "generic", 4},
		{CodeStorageError, true, "storage", 1},
		{Code("BOGUS"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(sev), got, want)
		}
	}
}
