// File: engine.go
// Title: Monkey Language Engine
// Description: High level interface over lexer and parser with input size
//              limits and SYNTAX_ERROR results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial engine implementation

package lang

import (
	"errors"

	mkerror "github.com/msto63/monkey/foundation/core/error"
	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/lang/ast"
	"github.com/msto63/monkey/foundation/lang/lexer"
	"github.com/msto63/monkey/foundation/lang/parser"
	"github.com/msto63/monkey/foundation/lang/token"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 64 * 1024

// Options configures the engine
type Options struct {
	Logger         *mklog.Logger
	MaxInputLength int // bytes; negative disables the limit
}

// Engine tokenizes and parses Monkey source
type Engine struct {
	logger  *mklog.Logger
	options Options
}

// Result holds everything one pass over a source produced. Program is
// never nil but only contains the statements that parsed cleanly.
type Result struct {
	Tokens      []token.Token
	Program     *ast.Program
	Diagnostics parser.ErrorList
}

// OK returns true when the source parsed without diagnostics
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mklog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "lang-engine"),
		options: opts,
	}
}

// MaxInputLength returns the effective input limit
func (e *Engine) MaxInputLength() int {
	return e.options.MaxInputLength
}

// Tokenize returns all tokens of src including the final EOF token
func (e *Engine) Tokenize(src string) ([]token.Token, error) {
	if err := e.checkInput(src, "lang.Tokenize"); err != nil {
		return nil, err
	}
	return lexer.New(src).Tokenize(), nil
}

// Parse returns the program for src, or nil and a SYNTAX_ERROR wrapping the
// parser.ErrorList when any statement failed
func (e *Engine) Parse(src string) (*ast.Program, error) {
	if err := e.checkInput(src, "lang.Parse"); err != nil {
		return nil, err
	}

	program, diags := e.parse(src)
	if len(diags) > 0 {
		return nil, syntaxError(diags, "lang.Parse")
	}
	return program, nil
}

// Analyze tokenizes and parses src and returns both results together with
// the diagnostics. Only oversize input is reported as an error.
func (e *Engine) Analyze(src string) (*Result, error) {
	if err := e.checkInput(src, "lang.Analyze"); err != nil {
		return nil, err
	}

	program, diags := e.parse(src)
	return &Result{
		Tokens:      lexer.New(src).Tokenize(),
		Program:     program,
		Diagnostics: diags,
	}, nil
}

// Validate parses src and checks the structural invariants of the tree
func (e *Engine) Validate(src string) error {
	program, err := e.Parse(src)
	if err != nil {
		return err
	}
	return e.ValidateProgram(program)
}

// ValidateProgram checks the structural invariants of a parsed tree. A
// violation is a parser defect and carries CodeInternal.
func (e *Engine) ValidateProgram(program *ast.Program) error {
	if program == nil {
		return mkerror.New("no syntax tree to validate").
			WithCode(mkerror.CodeInternal).
			WithOperation("lang.ValidateProgram")
	}

	if violations := ast.Validate(program); len(violations) > 0 {
		e.logger.Error("invalid syntax tree", mklog.Fields{"violations": len(violations)})
		return mkerror.Wrap(errors.Join(violations...), "invalid syntax tree").
			WithCode(mkerror.CodeInternal).
			WithOperation("lang.ValidateProgram").
			WithDetail("violations", len(violations))
	}
	return nil
}

func (e *Engine) parse(src string) (*ast.Program, parser.ErrorList) {
	p := parser.NewWithOptions(lexer.New(src), parser.Options{Logger: e.logger})
	program := p.ParseProgram()
	diags := p.Errors()

	if len(diags) > 0 {
		e.logger.Debug("source has syntax errors", mklog.Fields{
			"diagnostics": len(diags),
			"first":       diags[0].Error(),
		})
	}
	return program, diags
}

func (e *Engine) checkInput(src, operation string) error {
	limit := e.options.MaxInputLength
	if limit > 0 && len(src) > limit {
		return mkerror.Newf("input too long: %d bytes (maximum %d)", len(src), limit).
			WithCode(mkerror.CodeInvalidInput).
			WithOperation(operation).
			WithDetail("length", len(src)).
			WithDetail("max_length", limit)
	}
	return nil
}

func syntaxError(diags parser.ErrorList, operation string) error {
	first := diags[0]
	return mkerror.Wrap(diags, "syntax error").
		WithCode(mkerror.CodeSyntax).
		WithOperation(operation).
		WithDetail("diagnostics", len(diags)).
		WithDetail("line", first.Pos.Line).
		WithDetail("column", first.Pos.Column)
}
