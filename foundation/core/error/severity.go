// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick log levels and exit
//              behaviour for errors raised by the lexer and its tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2025-03-02 v0.2.0: Severity mapping for lexer codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks input problems the caller can skip past,
	// such as a malformed lexeme.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code.
	SeverityMedium

	// SeverityHigh marks API misuse, e.g. reading from a finished lexer.
	SeverityHigh

	// SeverityCritical marks failures that end the session, such as an
	// unreadable source file.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should stop a pipeline
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeOpenFailed, CodeCloseFailed, CodeSourceRead:
		return SeverityCritical

	case CodePrecondition, CodeInternal, CodeMissingConfig, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh

	case CodeLexical, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
