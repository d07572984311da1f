// File: doc.go
// Title: String Utilities Package Documentation
// Description: Small set of string helpers shared by the foundation packages
//              and the monkey command line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package stringx provides string helpers used across the monkey foundation:
blank checks for configuration values and source input, rune-aware
truncation for log previews, and padding for tabular terminal output.
*/
package stringx
