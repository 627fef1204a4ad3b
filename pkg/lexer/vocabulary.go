// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Vocabulary table of reserved literals
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"fmt"
)

// Entry maps one reserved literal to its kind
type Entry struct {
	Literal string
	Kind    Kind
}

// vocabularyEntries lists every reserved literal in enumeration order
var vocabularyEntries = []Entry{
	{".", KindPeriod},
	{"const", KindConst},
	{";", KindSemicolon},
	{",", KindComma},
	{"var", KindVar},
	{"procedure", KindProcedure},
	{":=", KindBecomes},
	{"call", KindCall},
	{"begin", KindBegin},
	{"end", KindEnd},
	{"if", KindIf},
	{"then", KindThen},
	{"else", KindElse},
	{"while", KindWhile},
	{"do", KindDo},
	{"read", KindRead},
	{"write", KindWrite},
	{"skip", KindSkip},
	{"odd", KindOdd},
	{"(", KindLParen},
	{")", KindRParen},
	{"=", KindEq},
	{"<>", KindNeq},
	{"<", KindLss},
	{"<=", KindLeq},
	{">", KindGtr},
	{">=", KindGeq},
	{"+", KindPlus},
	{"-", KindMinus},
	{"*", KindMult},
	{"/", KindDiv},
}

// table is the exact-match index built from an entry list
type table struct {
	entries   []Entry
	byLiteral map[string]Kind
	byKind    map[Kind]string
}

var vocabulary = mustBuildTable(vocabularyEntries)

// buildTable indexes entries. Empty literals, duplicate literals, duplicate
// kinds and structural kinds (identifier, number, EOF) are rejected.
func buildTable(entries []Entry) (*table, error) {
	t := &table{
		entries:   make([]Entry, 0, len(entries)),
		byLiteral: make(map[string]Kind, len(entries)),
		byKind:    make(map[Kind]string, len(entries)),
	}

	for i, e := range entries {
		if e.Literal == "" {
			return nil, fmt.Errorf("vocabulary entry %d: empty literal for %s", i, e.Kind)
		}
		if !e.Kind.IsReserved() {
			return nil, fmt.Errorf("vocabulary entry %d: %s is not a reserved kind", i, e.Kind)
		}
		for j := 0; j < len(e.Literal); j++ {
			if category(e.Literal[j]) == catOther {
				return nil, fmt.Errorf("vocabulary entry %d: literal %q is not 7-bit text", i, e.Literal)
			}
		}
		if prev, ok := t.byLiteral[e.Literal]; ok {
			return nil, fmt.Errorf("vocabulary entry %d: literal %q already mapped to %s", i, e.Literal, prev)
		}
		if prev, ok := t.byKind[e.Kind]; ok {
			return nil, fmt.Errorf("vocabulary entry %d: %s already mapped to %q", i, e.Kind, prev)
		}
		t.byLiteral[e.Literal] = e.Kind
		t.byKind[e.Kind] = e.Literal
		t.entries = append(t.entries, e)
	}

	return t, nil
}

func mustBuildTable(entries []Entry) *table {
	t, err := buildTable(entries)
	if err != nil {
		panic("lexer: " + err.Error())
	}
	return t
}

// Lookup returns the reserved kind for an exact, case-sensitive literal
func Lookup(text string) (Kind, bool) {
	k, ok := vocabulary.byLiteral[text]
	return k, ok
}

// Literal returns the literal text of a reserved kind
func Literal(kind Kind) (string, bool) {
	s, ok := vocabulary.byKind[kind]
	return s, ok
}

// Vocabulary returns a copy of the table in enumeration order
func Vocabulary() []Entry {
	out := make([]Entry, len(vocabulary.entries))
	copy(out, vocabulary.entries)
	return out
}

// IsKeyword reports whether text is a reserved word
func IsKeyword(text string) bool {
	_, ok := Lookup(text)
	return ok && isLetter(text[0])
}

// IsSymbol reports whether text is a reserved punctuation or operator
func IsSymbol(text string) bool {
	_, ok := Lookup(text)
	return ok && category(text[0]) == catPunct
}
