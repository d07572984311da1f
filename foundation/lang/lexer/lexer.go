// File: lexer.go
// Title: Monkey Lexical Analyzer
// Description: Implements NextToken with one character of lookahead, maximal
//              munch for identifiers and integers, and line/column tracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer implementation

package lexer

import (
	"unicode/utf8"

	"github.com/msto63/monkey/foundation/lang/token"
)

// Lexer performs lexical analysis of Monkey source
type Lexer struct {
	input    string
	position int  // offset of ch
	readPos  int  // offset after ch
	ch       byte // current byte, 0 past the end
	line     int  // line of ch, 1-based
	column   int  // column of ch, 1-based
}

// New creates a lexer for input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 1}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.pos()

	if l.atEnd() {
		return token.New(token.EOF, token.EOFLiteral, pos)
	}

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQ, "==", pos)
		} else {
			tok = l.single(token.ASSIGN, pos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NOT_EQ, "!=", pos)
		} else {
			tok = l.single(token.BANG, pos)
		}
	case '+':
		tok = l.single(token.PLUS, pos)
	case '-':
		tok = l.single(token.MINUS, pos)
	case '*':
		tok = l.single(token.ASTERISK, pos)
	case '/':
		tok = l.single(token.SLASH, pos)
	case '<':
		tok = l.single(token.LT, pos)
	case '>':
		tok = l.single(token.GT, pos)
	case ',':
		tok = l.single(token.COMMA, pos)
	case ';':
		tok = l.single(token.SEMICOLON, pos)
	case '(':
		tok = l.single(token.LPAREN, pos)
	case ')':
		tok = l.single(token.RPAREN, pos)
	case '{':
		tok = l.single(token.LBRACE, pos)
	case '}':
		tok = l.single(token.RBRACE, pos)
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readWhile(isLetter)
			return token.New(token.LookupIdent(literal), literal, pos)
		case isDigit(l.ch):
			return token.New(token.INT, l.readWhile(isDigit), pos)
		case l.ch >= utf8.RuneSelf:
			return token.New(token.ILLEGAL, l.readRune(), pos)
		default:
			tok = l.single(token.ILLEGAL, pos)
		}
	}

	l.readChar()
	return tok
}

// Tokenize drains the lexer and returns every token up to and including EOF
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Input returns the source text being scanned
func (l *Lexer) Input() string {
	return l.input
}

func (l *Lexer) readChar() {
	if l.readPos > 0 {
		if l.position < len(l.input) && l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEnd distinguishes the end of input from a NUL byte inside it
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() token.Position {
	return token.Position{Offset: l.position, Line: l.line, Column: l.column}
}

func (l *Lexer) single(t token.Type, pos token.Position) token.Token {
	return token.New(t, l.input[l.position:l.position+1], pos)
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for !l.atEnd() && pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readRune consumes one UTF-8 encoded character; invalid encodings consume a
// single byte
func (l *Lexer) readRune() string {
	start := l.position
	_, size := utf8.DecodeRuneInString(l.input[start:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
