// Package ast defines the abstract syntax tree produced by the Monkey parser.
//
// Package: ast
// Title: Monkey AST Node Model
// Description: Closed set of statement and expression nodes, canonical source
//              rendering, the visitor interface and tree traversal helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST implementation
//
// Statement and Expression are sealed: their marker methods are unexported,
// so only this package can add node shapes. Every node shape has a method on
// Visitor, which makes a forgotten case a compile error in every visitor.
//
// String renders canonical source with prefix and infix expressions fully
// parenthesised, which makes operator precedence visible:
//
//	program.String() // "let x = (1 + (2 * 3));"
//
// Inspect walks a tree depth first; Dump converts it into maps and slices
// suitable for JSON or YAML encoding.
package ast
