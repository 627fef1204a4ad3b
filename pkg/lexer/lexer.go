// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Lexer sessions: open, close, position accessors and Next
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"io"
	"math"
	"os"

	"github.com/google/uuid"
	mdwlog "github.com/msto63/plzero/foundation/core/log"
)

const (
	// DefaultMaxIdentLength is the longest identifier the PL/0 grammar accepts
	DefaultMaxIdentLength = 11

	// DefaultMaxNumber is the largest integer literal; larger literals are
	// rejected, not saturated.
	DefaultMaxNumber int64 = math.MaxInt32

	// CommentChar starts a comment that runs through the end of the line
	CommentChar = '#'
)

// Config holds lexer limits and the logger used for session events
type Config struct {
	MaxIdentLength int
	MaxNumber      int64
	Logger         *mdwlog.Logger
}

// DefaultConfig returns the default limits with logging disabled
func DefaultConfig() Config {
	return Config{
		MaxIdentLength: DefaultMaxIdentLength,
		MaxNumber:      DefaultMaxNumber,
		Logger:         mdwlog.Discard(),
	}
}

// Lexer is a pull-based tokenizer bound to one source at a time.
// A Lexer must not be used from more than one goroutine.
type Lexer struct {
	cfg    Config
	logger *mdwlog.Logger

	src       *source
	exhausted bool
	sessionID string
}

// New creates an unopened lexer with the default configuration
func New() *Lexer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an unopened lexer. Zero or negative limits fall
// back to the defaults.
func NewWithConfig(cfg Config) *Lexer {
	if cfg.MaxIdentLength <= 0 {
		cfg.MaxIdentLength = DefaultMaxIdentLength
	}
	if cfg.MaxNumber <= 0 {
		cfg.MaxNumber = DefaultMaxNumber
	}
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.Discard()
	}
	return &Lexer{
		cfg:    cfg,
		logger: cfg.Logger.WithName("lexer"),
	}
}

// Open binds the lexer to the file at path. A session that is still open
// is closed first. On failure the lexer is left unopened and the error
// carries CodeOpenFailed.
func (l *Lexer) Open(path string) error {
	if err := l.Close(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		err = openError(err, path)
		l.logger.LogError(err)
		return err
	}

	l.start(path, f, f)
	return nil
}

// OpenReader binds the lexer to r under the given source name. The caller
// keeps ownership of r; Close does not close it.
func (l *Lexer) OpenReader(name string, r io.Reader) error {
	if err := l.Close(); err != nil {
		return err
	}

	if r == nil {
		err := openError(nil, name)
		l.logger.LogError(err)
		return err
	}

	l.start(name, r, nil)
	return nil
}

func (l *Lexer) start(name string, r io.Reader, closer io.Closer) {
	l.src = newSource(name, r, closer)
	l.exhausted = false
	l.sessionID = uuid.NewString()
	l.logger = l.cfg.Logger.
		WithName("lexer").
		WithCorrelationID(l.sessionID).
		WithField("file", name)

	l.logger.Debug("session opened", mdwlog.Fields{
		"max_ident_length": l.cfg.MaxIdentLength,
		"max_number":       l.cfg.MaxNumber,
	})
}

// Close releases the source and marks the lexer done. Closing an unopened
// lexer is a no-op.
func (l *Lexer) Close() error {
	if l.src == nil {
		return nil
	}

	src := l.src
	l.src = nil
	l.exhausted = true

	if err := src.close(); err != nil {
		err = closeError(err, src.name)
		l.logger.LogError(err)
		return err
	}

	l.logger.Debug("session closed")
	return nil
}

// Done reports whether the lexer is unopened or has already returned the
// end-of-stream token.
func (l *Lexer) Done() bool {
	return l.src == nil || l.exhausted
}

// SessionID returns the id of the current or last session
func (l *Lexer) SessionID() string {
	return l.sessionID
}

// Filename returns the name of the current source
func (l *Lexer) Filename() (string, error) {
	if l.Done() {
		return "", ErrDone
	}
	return l.src.name, nil
}

// Line returns the line of the next unread character
func (l *Lexer) Line() (int, error) {
	if l.Done() {
		return 0, ErrDone
	}
	return l.src.line, nil
}

// Column returns the column of the next unread character
func (l *Lexer) Column() (int, error) {
	if l.Done() {
		return 0, ErrDone
	}
	return l.src.column, nil
}

// Position returns the position of the next unread character
func (l *Lexer) Position() (Position, error) {
	if l.Done() {
		return Position{}, ErrDone
	}
	return l.src.pos(), nil
}

// Next returns the next token. At end of input it returns the KindEOF
// token exactly once; after that, and on an unopened lexer, it returns
// ErrDone. A *Error is a recoverable lexical error: the offending input
// has been consumed and Next can be called again. Any other error ends
// the session.
func (l *Lexer) Next() (Token, error) {
	if l.Done() {
		return Token{}, ErrDone
	}

	tok, err := l.scan()
	if err != nil {
		if !IsLexical(err) {
			l.exhausted = true
		}
		l.logger.LogError(err)
		return Token{}, err
	}

	if tok.Kind == KindEOF {
		l.exhausted = true
		l.logger.Debug("end of stream", mdwlog.Fields{"line": tok.Line, "column": tok.Column})
	} else if l.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		l.logger.Trace("token", mdwlog.Fields{
			"kind":   tok.Kind.String(),
			"text":   tok.Text,
			"line":   tok.Line,
			"column": tok.Column,
		})
	}

	return tok, nil
}
