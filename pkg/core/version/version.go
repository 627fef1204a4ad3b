// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     version
// Description: Central version information for the plzero tools
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Tool version of the plzero command
	Tool = "0.2.0"

	// Lexer version of the token stream format (kinds and JSON/YAML layout)
	Lexer = "1.0.0"
)

// Overridden at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	default:
		return Tool
	}
}

// String returns the full version line printed by "plzero version"
func String() string {
	return fmt.Sprintf("plzero %s (lexer %s, commit %s, built %s)", Tool, Lexer, Commit, BuildDate)
}
