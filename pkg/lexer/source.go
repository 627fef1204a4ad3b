// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Character source with one-byte pushback and position tracking
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"bufio"
	"errors"
	"io"

	plerror "github.com/msto63/plzero/foundation/core/error"
)

// eof is returned by source.read at end of input
const eof = -1

// charClass is the 7-bit category of an input byte
type charClass int

const (
	catOther charClass = iota // bytes >= 0x80
	catLetter
	catDigit
	catSpace
	catControl
	catPunct
)

// category classifies c the way the C <ctype.h> predicates do in the
// "C" locale: isalpha, isdigit, isspace, iscntrl, ispunct.
func category(c byte) charClass {
	switch {
	case c >= 0x80:
		return catOther
	case isLetter(c):
		return catLetter
	case isDigit(c):
		return catDigit
	case c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
		return catSpace
	case c < 0x20 || c == 0x7f:
		return catControl
	default:
		return catPunct
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// source reads bytes from a reader and tracks the 1-based line and column
// of the next unread byte. One read can be pushed back.
type source struct {
	name   string
	reader *bufio.Reader
	closer io.Closer

	line, column         int
	lastLine, lastColumn int

	last    int
	pending bool
}

func newSource(name string, r io.Reader, closer io.Closer) *source {
	return &source{
		name:   name,
		reader: bufio.NewReader(r),
		closer: closer,
		line:   1,
		column: 1,
	}
}

// read returns the next byte or eof. Errors other than io.EOF are
// returned as CodeSourceRead errors.
func (s *source) read() (int, error) {
	s.lastLine, s.lastColumn = s.line, s.column

	if s.pending {
		s.pending = false
		s.advance(s.last)
		return s.last, nil
	}

	b, err := s.reader.ReadByte()
	if err != nil {
		s.last = eof
		if errors.Is(err, io.EOF) {
			return eof, nil
		}
		return eof, plerror.Wrap(err, "read failed").
			WithCode(plerror.CodeSourceRead).
			WithOperation("lexer.read").
			WithDetail("file", s.name).
			WithDetail("line", s.line).
			WithDetail("column", s.column)
	}

	s.last = int(b)
	s.advance(s.last)
	return s.last, nil
}

// unread pushes back the byte returned by the last read and restores
// the position held before it.
func (s *source) unread() {
	if s.pending {
		panic("lexer: unread called twice without read")
	}
	s.pending = true
	s.line, s.column = s.lastLine, s.lastColumn
}

// peek returns the next byte without consuming it
func (s *source) peek() (int, error) {
	c, err := s.read()
	if err != nil {
		return c, err
	}
	s.unread()
	return c, nil
}

func (s *source) advance(c int) {
	switch c {
	case eof:
	case '\n':
		s.line++
		s.column = 1
	default:
		s.column++
	}
}

// pos returns the position of the next unread byte
func (s *source) pos() Position {
	return Position{Filename: s.name, Line: s.line, Column: s.column}
}

// close releases the underlying reader if the lexer opened it
func (s *source) close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
