// Package error provides structured error handling for the monkey tool chain.
//
// Package: error
// Title: Monkey Error Handling Framework
// Description: Implements a structured error type with codes, severities,
//              details and cause chains. The language front end uses it to
//              report syntax failures to its callers, and the command line
//              tools use it for configuration, storage and I/O failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	import mkerror "github.com/msto63/monkey/foundation/core/error"
//
//	err := mkerror.New("input exceeds maximum length").
//		WithCode(mkerror.CodeInvalidInput).
//		WithOperation("lang.Parse").
//		WithDetail("length", len(src))
//
//	if mkerror.HasCode(err, mkerror.CodeSyntax) {
//		// report diagnostics
//	}
package error
