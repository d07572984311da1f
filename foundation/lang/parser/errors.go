// File: errors.go
// Title: Parser Diagnostics
// Description: Positioned syntax diagnostics and the list type returned by
//              Parser.Errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/monkey/foundation/lang/token"
)

// Diagnostic is a syntax error at a source position
type Diagnostic struct {
	Pos     token.Position
	Token   token.Token // the offending token
	Message string
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", d.Pos.Line, d.Pos.Column, d.Message)
}

// ErrorList holds diagnostics in the order they were found
type ErrorList []*Diagnostic

// Error returns one line per diagnostic
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}

// Err returns nil for an empty list and the list otherwise
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Messages returns the diagnostic messages without positions
func (l ErrorList) Messages() []string {
	out := make([]string, len(l))
	for i, d := range l {
		out[i] = d.Message
	}
	return out
}
