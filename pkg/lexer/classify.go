// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Token classification of assembled lexemes
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

// Classify returns the kind of a complete lexeme:
//
//  1. an exact vocabulary match is the reserved kind,
//  2. a letter followed by letters and digits is an identifier,
//  3. a run of digits is an integer literal.
//
// Anything else, including the empty string, is not a token.
func Classify(lexeme string) (Kind, bool) {
	if lexeme == "" {
		return 0, false
	}

	if kind, ok := Lookup(lexeme); ok {
		return kind, true
	}

	switch {
	case isLetter(lexeme[0]):
		for i := 1; i < len(lexeme); i++ {
			if !isLetter(lexeme[i]) && !isDigit(lexeme[i]) {
				return 0, false
			}
		}
		return KindIdent, true

	case isDigit(lexeme[0]):
		for i := 1; i < len(lexeme); i++ {
			if !isDigit(lexeme[i]) {
				return 0, false
			}
		}
		return KindNumber, true
	}

	return 0, false
}
