// Package error provides structured, coded errors for plzero.
//
// Package: error
// Title: plzero Error Handling
// Description: Errors carry a Code, a Severity, the failing operation and
//              key/value details. Codes split fatal session failures
//              (open, close, read, precondition) from recoverable lexical
//              errors so callers can decide whether to stop or continue.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Lexer codes, errors.As based lookups
//
// Usage:
//
//	err := error.New("cannot open source").
//		WithCode(error.CodeOpenFailed).
//		WithDetail("file", "prog.pl0")
//
//	if error.HasCode(err, error.CodeOpenFailed) {
//		// abort the pipeline
//	}
package error
