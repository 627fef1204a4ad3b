// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Lexical and lifecycle errors
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"errors"
	"fmt"

	plerror "github.com/msto63/plzero/foundation/core/error"
)

// ErrDone is returned by Next and the position accessors when the lexer
// is not open or has already produced the end-of-stream token.
var ErrDone = plerror.New("lexer is done").
	WithCode(plerror.CodePrecondition)

// Reasons reported in lexical errors
const (
	ReasonIllegalChar   = "illegal character"
	ReasonInvalidSymbol = "invalid symbol"
	ReasonIdentTooLong  = "identifier too long"
	ReasonDigitLetter   = "identifier starts with a digit"
	ReasonNumberTooBig  = "number too large"
)

// Error is a recoverable lexical error. The lexer has already consumed
// Text, so calling Next again continues after it.
type Error struct {
	Pos    Position
	Text   string
	Reason string
}

func newLexicalError(pos Position, text, reason string) *Error {
	return &Error{Pos: pos, Text: text, Reason: reason}
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Pos, e.Reason, e.Text)
}

// Unwrap exposes the coded form of the error so plerror.HasCode and
// plerror.GetCode report CodeLexical.
func (e *Error) Unwrap() error {
	return plerror.New(e.Reason).
		WithCode(plerror.CodeLexical).
		WithOperation("lexer.Next").
		WithDetail("file", e.Pos.Filename).
		WithDetail("line", e.Pos.Line).
		WithDetail("column", e.Pos.Column).
		WithDetail("text", e.Text)
}

// IsLexical reports whether err is (or wraps) a recoverable lexical error
func IsLexical(err error) bool {
	var lexErr *Error
	return errors.As(err, &lexErr)
}

func openError(err error, name string) error {
	var e *plerror.Error
	if err == nil {
		e = plerror.New("cannot open source")
	} else {
		e = plerror.Wrap(err, "cannot open source")
	}
	return e.WithCode(plerror.CodeOpenFailed).
		WithOperation("lexer.Open").
		WithDetail("file", name)
}

func closeError(err error, name string) error {
	return plerror.Wrap(err, "cannot close source").
		WithCode(plerror.CodeCloseFailed).
		WithOperation("lexer.Close").
		WithDetail("file", name)
}
