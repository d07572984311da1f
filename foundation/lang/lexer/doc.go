// Package lexer turns Monkey source text into tokens.
//
// Package: lexer
// Title: Monkey Lexical Analyzer
// Description: Pull-based tokenizer over a single source string. Each call to
//              NextToken classifies the next lexeme and records its position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// The lexer never fails. Characters outside the language become ILLEGAL
// tokens and scanning continues with the next character. A multi-byte UTF-8
// character is reported as one ILLEGAL token. After the input is exhausted
// every call returns the same EOF token.
//
// Usage:
//
//	l := lexer.New("let x = 5;")
//	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
//		fmt.Println(tok)
//	}
//
// A Lexer is not safe for concurrent use.
package lexer
