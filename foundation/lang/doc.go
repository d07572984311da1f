// Package lang is the entry point to the Monkey language front end.
//
// Package: lang
// Title: Monkey Language Engine
// Description: Combines lexer and parser behind a small engine with input
//              limits, logging and structured errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial engine
//
// The sub-packages can be used directly; the engine adds the checks a host
// application usually wants around them:
//
//   - input size limit (Options.MaxInputLength)
//   - all-or-nothing parsing: Parse returns either a Program or an error
//     with code SYNTAX_ERROR that wraps the parser.ErrorList
//   - Analyze for tools that want tokens, partial tree and diagnostics at once
//
// Usage:
//
//	engine := lang.New(lang.Options{})
//	program, err := engine.Parse("let x = 1 + 2;")
//	if err != nil {
//		var diags parser.ErrorList
//		if errors.As(err, &diags) {
//			for _, d := range diags {
//				fmt.Println(d)
//			}
//		}
//		return err
//	}
//	fmt.Println(program)
//
// An Engine holds only immutable options and is safe for concurrent use.
package lang
