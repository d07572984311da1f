// Package token defines the lexical vocabulary of the Monkey language.
//
// Package: token
// Title: Monkey Token Definitions
// Description: Declares the closed set of token kinds, the token value
//              produced by the lexer, source positions and the keyword table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Every token carries its kind, the exact source text it was read from and
// the position of its first byte. Type.String returns the display name used
// in diagnostics ("=", "fn", "IDENT"); Type.Name returns the enumeration
// name used in debug output ("ASSIGN", "FUNCTION", "IDENT").
//
// The keyword table is built once at package initialisation and never
// modified, so LookupIdent is safe for concurrent use.
package token
