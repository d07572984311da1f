// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     repl
// Description: Line oriented shell that prints the tokens of every input line
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/lang"
	"github.com/msto63/monkey/foundation/lang/token"
	"github.com/msto63/monkey/internal/history"
	"github.com/msto63/monkey/internal/render"
)

// DefaultPrompt is printed before every line
const DefaultPrompt = ">> "

// DefaultMaxReadErrors bounds consecutive failed reads before Start gives up
const DefaultMaxReadErrors = 10

// Options configures the shell
type Options struct {
	Prompt string

	// ParseMode additionally parses every line and prints its diagnostics
	ParseMode bool

	Engine *lang.Engine
	Logger *mklog.Logger

	// History records every non-blank line when set
	History   history.Store
	SessionID string

	MaxReadErrors int
}

// REPL reads lines and prints their tokens
type REPL struct {
	opts   Options
	logger *mklog.Logger
}

// New creates a new shell
func New(opts Options) *REPL {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Logger == nil {
		opts.Logger = mklog.GetDefault()
	}
	if opts.Engine == nil {
		opts.Engine = lang.New(lang.Options{Logger: opts.Logger})
	}
	if opts.History != nil && opts.SessionID == "" {
		opts.SessionID = history.NewSessionID()
	}
	if opts.MaxReadErrors <= 0 {
		opts.MaxReadErrors = DefaultMaxReadErrors
	}

	return &REPL{
		opts:   opts,
		logger: opts.Logger.WithField("component", "repl").WithSession(opts.SessionID),
	}
}

// SessionID returns the session lines are recorded under
func (r *REPL) SessionID() string {
	return r.opts.SessionID
}

// Start runs the read loop until the input ends or ctx is cancelled. A failed
// read is reported on errOut and the loop continues. Cancellation is observed
// while waiting for a line; the pending read is abandoned.
func (r *REPL) Start(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	requests := make(chan struct{})
	results := make(chan readResult)
	done := make(chan struct{})
	defer close(done)

	go readLines(bufio.NewReader(in), requests, results, done)

	readErrors := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, r.opts.Prompt)

		var res readResult
		select {
		case requests <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case res = <-results:
		case <-ctx.Done():
			r.logger.Debug("read interrupted", mklog.Fields{"reason": ctx.Err().Error()})
			return ctx.Err()
		}

		line, err := res.line, res.err
		if err != nil && !errors.Is(err, io.EOF) {
			readErrors++
			fmt.Fprintf(errOut, "Error: failed to read input: %v\n", err)
			r.logger.WarnWithErr("read failed", err, mklog.Fields{"consecutive": readErrors})
			if readErrors >= r.opts.MaxReadErrors {
				return err
			}
			continue
		}
		readErrors = 0

		if line != "" {
			r.Eval(ctx, line, out, errOut)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLines reads one line per request until done is closed. A read blocked
// in the underlying reader outlives done and ends with the reader.
func readLines(reader *bufio.Reader, requests <-chan struct{}, results chan<- readResult, done <-chan struct{}) {
	for {
		select {
		case <-requests:
		case <-done:
			return
		}

		line, err := reader.ReadString('\n')
		select {
		case results <- readResult{line: line, err: err}:
		case <-done:
			return
		}
	}
}

// Eval handles one input line: prints its tokens up to EOF, the parser
// diagnostics in parse mode, and records the line in the history
func (r *REPL) Eval(ctx context.Context, line string, out, errOut io.Writer) {
	result, err := r.opts.Engine.Analyze(line)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return
	}

	count := 0
	for _, tok := range result.Tokens {
		if tok.Type == token.EOF {
			break
		}
		fmt.Fprintln(out, tok.String())
		count++
	}

	if r.opts.ParseMode && !result.OK() {
		fmt.Fprintln(out, "parser errors:")
		render.Diagnostics(out, "", result.Diagnostics)
	}

	r.record(ctx, line, count, len(result.Diagnostics), errOut)
}

func (r *REPL) record(ctx context.Context, line string, tokens, diagnostics int, errOut io.Writer) {
	text := strings.TrimRight(line, "\r\n")
	if r.opts.History == nil || strings.TrimSpace(text) == "" {
		return
	}

	err := r.opts.History.Add(ctx, &history.Entry{
		SessionID:   r.opts.SessionID,
		Line:        text,
		TokenCount:  tokens,
		Diagnostics: diagnostics,
	})
	if err != nil {
		// the shell stays usable without history
		fmt.Fprintf(errOut, "Error: %v\n", err)
		r.logger.LogError(err)
	}
}
