// File: token.go
// Title: Monkey Token Types
// Description: Token kinds, token values, positions and keyword lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"sort"
)

// Type represents the kind of a lexical token
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	EOF

	// Identifiers and literals
	IDENT // add, foobar, x, y
	INT   // 1343456

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NOT_EQ   // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// Keywords
	keywordStart
	FUNCTION // fn
	LET      // let
	TRUE     // true
	FALSE    // false
	IF       // if
	ELSE     // else
	RETURN   // return
	keywordEnd
)

// EOFLiteral is the literal of the end-of-input token. The lexer reads a NUL
// byte past the end of the source and reports it verbatim.
const EOFLiteral = "\x00"

var typeInfo = [...]struct {
	name    string
	display string
}{
	ILLEGAL:   {"ILLEGAL", "ILLEGAL"},
	EOF:       {"EOF", "EOF"},
	IDENT:     {"IDENT", "IDENT"},
	INT:       {"INT", "INT"},
	ASSIGN:    {"ASSIGN", "="},
	PLUS:      {"PLUS", "+"},
	MINUS:     {"MINUS", "-"},
	BANG:      {"BANG", "!"},
	ASTERISK:  {"ASTERISK", "*"},
	SLASH:     {"SLASH", "/"},
	LT:        {"LT", "<"},
	GT:        {"GT", ">"},
	EQ:        {"EQ", "=="},
	NOT_EQ:    {"NOT_EQ", "!="},
	COMMA:     {"COMMA", ","},
	SEMICOLON: {"SEMICOLON", ";"},
	LPAREN:    {"LPAREN", "("},
	RPAREN:    {"RPAREN", ")"},
	LBRACE:    {"LBRACE", "{"},
	RBRACE:    {"RBRACE", "}"},
	FUNCTION:  {"FUNCTION", "fn"},
	LET:       {"LET", "let"},
	TRUE:      {"TRUE", "true"},
	FALSE:     {"FALSE", "false"},
	IF:        {"IF", "if"},
	ELSE:      {"ELSE", "else"},
	RETURN:    {"RETURN", "return"},
}

// String returns the display name of the token type
func (t Type) String() string {
	if t.valid() {
		return typeInfo[t].display
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Name returns the enumeration name of the token type
func (t Type) Name() string {
	if t.valid() {
		return typeInfo[t].name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword reports whether t is a reserved word
func (t Type) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(typeInfo) && typeInfo[t].name != ""
}

// Position is a location in the source text
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, counted in bytes
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set by the lexer
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Token is a classified piece of source text
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// New creates a token
func New(t Type, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}

// String returns the debug form printed by the interactive shell,
// e.g. {Type:LET Literal:"let"}
func (t Token) String() string {
	return fmt.Sprintf("{Type:%s Literal:%q}", t.Type.Name(), t.Literal)
}

var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent returns the keyword type for ident, or IDENT
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// Keywords returns the reserved words in sorted order
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
