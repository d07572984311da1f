// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     render
// Description: Output formats for tokens, syntax trees and diagnostics
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	mkerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/msto63/monkey/foundation/lang/ast"
	"github.com/msto63/monkey/foundation/lang/parser"
	"github.com/msto63/monkey/foundation/lang/token"
	"gopkg.in/yaml.v3"
)

// Format selects how a syntax tree is written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat converts a flag value to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", mkerror.Newf("unknown output format %q (want text, json or yaml)", s).
			WithCode(mkerror.CodeInvalidInput).
			WithOperation("render.ParseFormat")
	}
}

// Tokens writes one token per line in debug form, {Type:LET Literal:"let"}
func Tokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.String()); err != nil {
			return ioError(err, "render.Tokens")
		}
	}
	return nil
}

// TokensWithPositions writes tokens prefixed with line:column
func TokensWithPositions(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", tok.Pos.String(), tok.String()); err != nil {
			return ioError(err, "render.TokensWithPositions")
		}
	}
	return nil
}

// Program writes the program in the given format. Text is the canonical
// source form with one statement per line.
func Program(w io.Writer, program *ast.Program, format Format) error {
	switch format {
	case FormatText:
		for _, stmt := range program.Statements {
			if _, err := fmt.Fprintln(w, stmt.String()); err != nil {
				return ioError(err, "render.Program")
			}
		}
		return nil

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return ioError(err, "render.Program")
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return ioError(err, "render.Program")
		}
		if err := enc.Close(); err != nil {
			return ioError(err, "render.Program")
		}
		return nil

	default:
		return mkerror.Newf("unknown output format %q", format).
			WithCode(mkerror.CodeInvalidInput).
			WithOperation("render.Program")
	}
}

// Diagnostics writes one "name:line:column: message" line per diagnostic.
// An empty name is left out.
func Diagnostics(w io.Writer, name string, diags parser.ErrorList) error {
	for _, d := range diags {
		prefix := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
		if name != "" {
			prefix = name + ":" + prefix
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", prefix, d.Message); err != nil {
			return ioError(err, "render.Diagnostics")
		}
	}
	return nil
}

// Value writes v as JSON or YAML, or with %v for text
func Value(w io.Writer, v interface{}, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return ioError(err, "render.Value")
		}
	case FormatYAML:
		if err := yaml.NewEncoder(w).Encode(v); err != nil {
			return ioError(err, "render.Value")
		}
	default:
		if _, err := fmt.Fprintln(w, v); err != nil {
			return ioError(err, "render.Value")
		}
	}
	return nil
}

func ioError(err error, operation string) error {
	return mkerror.Wrap(err, "write failed").
		WithCode(mkerror.CodeIOError).
		WithOperation(operation)
}
