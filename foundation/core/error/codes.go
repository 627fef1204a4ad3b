// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across plzero. Codes separate fatal session
//              failures from recoverable lexical errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Lexer session and scanning codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexer session
	CodeOpenFailed   Code = "OPEN_FAILED"
	CodeCloseFailed  Code = "CLOSE_FAILED"
	CodeSourceRead   Code = "SOURCE_READ"
	CodePrecondition Code = "PRECONDITION"

	// Scanning
	CodeLexical Code = "LEXICAL"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeOpenFailed, CodeCloseFailed, CodeSourceRead, CodePrecondition,
		CodeLexical,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeOpenFailed, CodeCloseFailed, CodeSourceRead, CodePrecondition:
		return "session"
	case CodeLexical:
		return "lexical"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsFatal reports whether errors with this code end a lexer session.
// Lexical errors are reported per token and scanning continues.
func (c Code) IsFatal() bool {
	switch c {
	case CodeLexical, CodeInvalidInput:
		return false
	default:
		return true
	}
}
