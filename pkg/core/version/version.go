// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and the language
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	App = "0.1.0"

	// Language front end (lexer, parser, AST) version
	Language = "0.1.0"
)

// Build information, set with -ldflags "-X ...version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	App       string `json:"app" yaml:"app"`
	Language  string `json:"language" yaml:"language"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		App:       App,
		Language:  Language,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "monkey v<App>"
func Short() string {
	return "monkey v" + App
}

// String renders the multi-line form printed by the version command
func (i Info) String() string {
	return fmt.Sprintf("monkey v%s\n  Language:   %s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.App, i.Language, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
