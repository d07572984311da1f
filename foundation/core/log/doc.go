// Package log provides structured logging for the Monkey tools.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a small structured logger with
//              contextual fields, several output formats and integration with
//              the core error package. The lexer, parser and command line
//              tools all log through it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Features:
// - JSON, text, console and logfmt output
// - Level filtering
// - Immutable With* builders; every builder returns a new logger
// - Session and source context for REPL and file runs
// - LogError maps error severity to a log level
// - Timers for measuring tokenize and parse phases
//
// Usage:
//
//	import mklog "github.com/msto63/monkey/foundation/core/log"
//
//	logger := mklog.New().
//		WithLevel(mklog.LevelDebug).
//		WithFormat(mklog.FormatText).
//		WithSource("stdin")
//
//	logger.Info("parsed program", mklog.Fields{"statements": 3})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
