// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Whole-source convenience functions
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"io"
	"strings"
)

// Tokenize scans r to the end. It returns every token (ending with the
// EOF token), the recoverable lexical errors in source order, and a
// fatal error if the session could not be opened or read.
func Tokenize(name string, r io.Reader, cfg Config) ([]Token, []error, error) {
	lx := NewWithConfig(cfg)
	if err := lx.OpenReader(name, r); err != nil {
		return nil, nil, err
	}
	defer lx.Close()

	return drain(lx)
}

// TokenizeFile scans the file at path to the end
func TokenizeFile(path string, cfg Config) (tokens []Token, lexErrs []error, err error) {
	lx := NewWithConfig(cfg)
	if err := lx.Open(path); err != nil {
		return nil, nil, err
	}
	defer func() {
		if cerr := lx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return drain(lx)
}

// TokenizeString scans an in-memory program with the default configuration
func TokenizeString(src string) ([]Token, []error, error) {
	return Tokenize("", strings.NewReader(src), DefaultConfig())
}

func drain(lx *Lexer) ([]Token, []error, error) {
	var (
		tokens  []Token
		lexErrs []error
	)

	for !lx.Done() {
		tok, err := lx.Next()
		if err != nil {
			if IsLexical(err) {
				lexErrs = append(lexErrs, err)
				continue
			}
			return tokens, lexErrs, err
		}
		tokens = append(tokens, tok)
	}

	return tokens, lexErrs, nil
}
