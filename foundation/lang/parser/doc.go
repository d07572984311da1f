// Package parser builds an AST from Monkey tokens.
//
// Package: parser
// Title: Monkey Parser
// Description: Recursive descent for statements and Pratt precedence climbing
//              for expressions over a two-token window. Syntax errors are
//              collected as positioned diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation
//
// The parser never stops at the first error. When a statement fails it
// records a Diagnostic, skips ahead to the next semicolon outside any braces
// (or past the block the failed statement opened), and continues with the
// statement after it.
// Statements that parse cleanly are kept in the Program in source order.
//
// Callers that need an all-or-nothing result must check Errors before using
// the Program:
//
//	p := parser.New(lexer.New(src))
//	program := p.ParseProgram()
//	if err := p.Errors().Err(); err != nil {
//		return nil, err
//	}
//
// Operator precedence, lowest to highest:
//
//	==  !=
//	<   >
//	+   -
//	*   /
//	!x  -x   (prefix)
//	f(x)     (call)
package parser
