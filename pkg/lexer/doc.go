// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Package documentation
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

/*
Package lexer converts PL/0 source text into classified tokens.

A Lexer is opened on one source, handed to a parser that calls Next until
the KindEOF token arrives, and then closed:

	lx := lexer.New()
	if err := lx.Open("prog.pl0"); err != nil {
		return err // CodeOpenFailed
	}
	defer lx.Close()

	for !lx.Done() {
		tok, err := lx.Next()
		if lexer.IsLexical(err) {
			report(err) // recoverable, scanning continues
			continue
		}
		if err != nil {
			return err
		}
		use(tok)
	}

Classification uses 7-bit ASCII categories only. Comments start with '#'
and run to the end of the line. Identifiers longer than
Config.MaxIdentLength and integer literals above Config.MaxNumber are
lexical errors. Multi-character operators (":=", "<=", "<>", ">=") are
matched before their one character prefixes.
*/
package lexer
