// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     tui
// Description: Message types for async operations in the explorer
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/msto63/monkey/foundation/lang"
)

// analyzedMsg is sent when a source line has been tokenized and parsed
type analyzedMsg struct {
	source string
	result *lang.Result
	err    error
}

// clearMsg resets the explorer to its empty state
type clearMsg struct{}
