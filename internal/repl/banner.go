// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     repl
// Description: Greeting banner shown before the interactive shell starts
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultGreetingEnv is the variable holding the user name
	DefaultGreetingEnv = "USER"

	// DefaultFallbackName is used when the variable is unset or empty
	DefaultFallbackName = "man/woman"

	hintLine = "Feel free to type in commands"
)

// Banner styles
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")

	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	bannerHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// UserName reads the greeting name from envVar, falling back to fallback
func UserName(envVar, fallback string) string {
	if envVar == "" {
		envVar = DefaultGreetingEnv
	}
	if fallback == "" {
		fallback = DefaultFallbackName
	}
	if name, ok := os.LookupEnv(envVar); ok && name != "" {
		return name
	}
	return fallback
}

// Greeting returns the first banner line for name
func Greeting(name string) string {
	return fmt.Sprintf("Hello %s! This is the Monkey programming language!", name)
}

// WriteBanner writes the greeting, the hint line and a blank line. Styled
// output is meant for terminals.
func WriteBanner(w io.Writer, name string, styled bool) error {
	greeting, hint := Greeting(name), hintLine
	if styled {
		greeting = bannerTitleStyle.Render(greeting)
		hint = bannerHintStyle.Render(hint)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n\n", greeting, hint)
	return err
}
