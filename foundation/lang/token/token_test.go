// File: token_test.go
// Title: Token Tests
// Description: Tests for token naming, keyword lookup and debug output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package token

import (
	"reflect"
	"testing"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"fn", FUNCTION},
		{"let", LET},
		{"true", TRUE},
		{"false", FALSE},
		{"if", IF},
		{"else", ELSE},
		{"return", RETURN},
		{"x", IDENT},
		{"foobar", IDENT},
		{"Let", IDENT},
		{"function", IDENT},
		{"", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupIdent(tt.ident); got != tt.want {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got.Name(), tt.want.Name())
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		typ     Type
		name    string
		display string
	}{
		{ILLEGAL, "ILLEGAL", "ILLEGAL"},
		{EOF, "EOF", "EOF"},
		{IDENT, "IDENT", "IDENT"},
		{INT, "INT", "INT"},
		{ASSIGN, "ASSIGN", "="},
		{EQ, "EQ", "=="},
		{NOT_EQ, "NOT_EQ", "!="},
		{LBRACE, "LBRACE", "{"},
		{RBRACE, "RBRACE", "}"},
		{FUNCTION, "FUNCTION", "fn"},
		{RETURN, "RETURN", "return"},
	}

	for _, tt := range tests {
		if got := tt.typ.Name(); got != tt.name {
			t.Errorf("Name() = %q, want %q", got, tt.name)
		}
		if got := tt.typ.String(); got != tt.display {
			t.Errorf("String() = %q, want %q", got, tt.display)
		}
	}

	if got := Type(-1).String(); got != "Type(-1)" {
		t.Errorf("invalid type String() = %q", got)
	}
	if got := keywordStart.Name(); got != "Type(20)" {
		t.Errorf("marker Name() = %q", got)
	}
}

func TestEveryTypeHasAName(t *testing.T) {
	for typ := ILLEGAL; typ < keywordEnd; typ++ {
		if typ == keywordStart {
			continue
		}
		if !typ.valid() {
			t.Errorf("Type(%d) has no name", int(typ))
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, word := range Keywords() {
		if !LookupIdent(word).IsKeyword() {
			t.Errorf("%q should be a keyword", word)
		}
	}
	for _, typ := range []Type{ILLEGAL, EOF, IDENT, INT, ASSIGN, RBRACE, keywordStart, keywordEnd} {
		if typ.IsKeyword() {
			t.Errorf("%s should not be a keyword", typ.Name())
		}
	}
}

func TestKeywords(t *testing.T) {
	want := []string{"else", "false", "fn", "if", "let", "return", "true"}
	got := Keywords()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}

	got[0] = "changed"
	if LookupIdent("else") != ELSE {
		t.Error("Keywords() must return a copy")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New(LET, "let", Position{}), `{Type:LET Literal:"let"}`},
		{New(ASSIGN, "=", Position{}), `{Type:ASSIGN Literal:"="}`},
		{New(EOF, EOFLiteral, Position{}), `{Type:EOF Literal:"\x00"}`},
		{New(ILLEGAL, "é", Position{}), `{Type:ILLEGAL Literal:"é"}`},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestPosition(t *testing.T) {
	p := Position{Offset: 12, Line: 2, Column: 5}
	if p.String() != "2:5" {
		t.Errorf("String() = %q", p.String())
	}
	if !p.IsValid() || (Position{}).IsValid() {
		t.Error("IsValid() mismatch")
	}
}
