// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              language front end and the command line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language front end
	CodeSyntax  Code = "SYNTAX_ERROR"
	CodeLexical Code = "LEXICAL_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage and I/O
	CodeStorageError Code = "STORAGE_ERROR"
	CodeIOError      Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeLexical,
		CodeConfigError, CodeInvalidConfig,
		CodeStorageError, CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeLexical:
		return "language"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorageError, CodeIOError:
		return "storage"
	case CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the command line tools use for
// an error carrying this code.
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax, CodeLexical:
		return 2
	case CodeConfigError, CodeInvalidConfig:
		return 3
	case CodeInvalidInput, CodeNotFound:
		return 4
	default:
		return 1
	}
}
