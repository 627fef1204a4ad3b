// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Character state machine assembling lexemes
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"strconv"
)

// scan runs the start state: it skips blanks, control characters and
// comments, then dispatches on the category of the first character.
func (l *Lexer) scan() (Token, error) {
	src := l.src

	for {
		start := src.pos()
		c, err := src.read()
		if err != nil {
			return Token{}, err
		}
		if c == eof {
			return Token{Kind: KindEOF, Filename: start.Filename, Line: start.Line, Column: start.Column}, nil
		}

		b := byte(c)
		if b == CommentChar {
			atEOF, err := l.skipComment()
			if err != nil {
				return Token{}, err
			}
			if atEOF {
				end := src.pos()
				return Token{Kind: KindEOF, Filename: end.Filename, Line: end.Line, Column: end.Column}, nil
			}
			continue
		}

		switch category(b) {
		case catSpace, catControl:
			continue
		case catLetter:
			return l.scanIdent(b, start)
		case catDigit:
			return l.scanNumber(b, start)
		case catPunct:
			return l.scanSymbol(b, start)
		default:
			return Token{}, newLexicalError(start, string([]byte{b}), ReasonIllegalChar)
		}
	}
}

// skipComment consumes everything through the next newline. It reports
// whether input ended inside the comment.
func (l *Lexer) skipComment() (bool, error) {
	for {
		c, err := l.src.read()
		if err != nil {
			return false, err
		}
		switch c {
		case eof:
			return true, nil
		case '\n':
			return false, nil
		}
	}
}

// scanIdent accumulates a letter followed by letters and digits
func (l *Lexer) scanIdent(first byte, start Position) (Token, error) {
	buf := []byte{first}

	for {
		c, err := l.src.read()
		if err != nil {
			return Token{}, err
		}
		if c == eof {
			break
		}
		if b := byte(c); isLetter(b) || isDigit(b) {
			buf = append(buf, b)
			continue
		}
		l.src.unread()
		break
	}

	text := string(buf)
	if len(text) > l.cfg.MaxIdentLength {
		return Token{}, newLexicalError(start, text, ReasonIdentTooLong)
	}
	return l.finish(text, start)
}

// scanNumber accumulates digits. A letter right after the digits makes
// the whole alphanumeric run a malformed identifier, reported at the
// first letter.
func (l *Lexer) scanNumber(first byte, start Position) (Token, error) {
	buf := []byte{first}

	for {
		at := l.src.pos()
		c, err := l.src.read()
		if err != nil {
			return Token{}, err
		}
		if c == eof {
			break
		}

		b := byte(c)
		if isDigit(b) {
			buf = append(buf, b)
			continue
		}
		if isLetter(b) {
			buf = append(buf, b)
			rest, err := l.consumeAlnum()
			if err != nil {
				return Token{}, err
			}
			return Token{}, newLexicalError(at, string(buf)+rest, ReasonDigitLetter)
		}

		l.src.unread()
		break
	}

	return l.finish(string(buf), start)
}

// consumeAlnum swallows the remaining letters and digits of a bad lexeme
func (l *Lexer) consumeAlnum() (string, error) {
	var buf []byte
	for {
		c, err := l.src.read()
		if err != nil {
			return "", err
		}
		if c == eof {
			return string(buf), nil
		}
		if b := byte(c); isLetter(b) || isDigit(b) {
			buf = append(buf, b)
			continue
		}
		l.src.unread()
		return string(buf), nil
	}
}

// scanSymbol applies maximal munch over the vocabulary: a two character
// literal wins over its one character prefix.
func (l *Lexer) scanSymbol(first byte, start Position) (Token, error) {
	next, err := l.src.peek()
	if err != nil {
		return Token{}, err
	}

	if next != eof && category(byte(next)) == catPunct {
		pair := string([]byte{first, byte(next)})
		if _, ok := Lookup(pair); ok {
			if _, err := l.src.read(); err != nil {
				return Token{}, err
			}
			return l.finish(pair, start)
		}
	}

	return l.finish(string([]byte{first}), start)
}

// finish classifies a complete lexeme and builds the token
func (l *Lexer) finish(text string, start Position) (Token, error) {
	kind, ok := Classify(text)
	if !ok {
		reason := ReasonIllegalChar
		if category(text[0]) == catPunct {
			reason = ReasonInvalidSymbol
		}
		return Token{}, newLexicalError(start, text, reason)
	}

	tok := Token{
		Kind:     kind,
		Text:     text,
		Filename: start.Filename,
		Line:     start.Line,
		Column:   start.Column,
	}

	if kind == KindNumber {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil || v > l.cfg.MaxNumber {
			return Token{}, newLexicalError(start, text, ReasonNumberTooBig)
		}
		tok.Value = v
	}

	return tok, nil
}
