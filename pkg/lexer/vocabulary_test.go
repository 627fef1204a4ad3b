// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Vocabulary, kind and classification tests
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVocabulary_CoversEveryReservedKind(t *testing.T) {
	entries := Vocabulary()
	require.Len(t, entries, 31)

	seen := make(map[Kind]bool)
	for _, e := range entries {
		seen[e.Kind] = true

		kind, ok := Lookup(e.Literal)
		require.True(t, ok, "literal %q not found", e.Literal)
		assert.Equal(t, e.Kind, kind)

		lit, ok := Literal(e.Kind)
		require.True(t, ok)
		assert.Equal(t, e.Literal, lit)
	}

	for _, k := range Kinds() {
		assert.Equal(t, k.IsReserved(), seen[k], "kind %s", k)
	}
}

func TestVocabulary_ReturnsCopy(t *testing.T) {
	entries := Vocabulary()
	entries[0] = Entry{Literal: "?", Kind: KindDiv}

	kind, ok := Lookup(".")
	require.True(t, ok)
	assert.Equal(t, KindPeriod, kind)
	assert.Equal(t, ".", Vocabulary()[0].Literal)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"procedure", KindProcedure, true},
		{":=", KindBecomes, true},
		{"<>", KindNeq, true},
		{"Begin", 0, false},
		{"==", 0, false},
		{"!=", 0, false},
		{"process", 0, false},
		{":", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		kind, ok := Lookup(tt.text)
		assert.Equal(t, tt.ok, ok, "Lookup(%q)", tt.text)
		assert.Equal(t, tt.kind, kind, "Lookup(%q)", tt.text)
	}
}

func TestIsKeywordAndSymbol(t *testing.T) {
	assert.True(t, IsKeyword("while"))
	assert.False(t, IsKeyword(">="))
	assert.False(t, IsKeyword("whilst"))

	assert.True(t, IsSymbol(">="))
	assert.True(t, IsSymbol(";"))
	assert.False(t, IsSymbol("odd"))
	assert.False(t, IsSymbol("!"))
}

func TestBuildTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty literal", []Entry{{"", KindPlus}}},
		{"duplicate literal", []Entry{{"+", KindPlus}, {"+", KindMinus}}},
		{"duplicate kind", []Entry{{"+", KindPlus}, {"plus", KindPlus}}},
		{"identifier kind", []Entry{{"x", KindIdent}}},
		{"number kind", []Entry{{"1", KindNumber}}},
		{"eof kind", []Entry{{"$", KindEOF}}},
		{"invalid kind", []Entry{{"?", Kind(99)}}},
		{"non 7-bit literal", []Entry{{"\xc3\xa4", KindPlus}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildTable(tt.entries)
			assert.Error(t, err)
		})
	}

	t.Run("valid table", func(t *testing.T) {
		tbl, err := buildTable([]Entry{{"+", KindPlus}, {"-", KindMinus}})
		require.NoError(t, err)
		assert.Equal(t, KindMinus, tbl.byLiteral["-"])
	})

	t.Run("mustBuildTable panics", func(t *testing.T) {
		assert.Panics(t, func() { mustBuildTable([]Entry{{"", KindPlus}}) })
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   Kind
		ok     bool
	}{
		{"odd", KindOdd, true},
		{">=", KindGeq, true},
		{"x1", KindIdent, true},
		{"oddity", KindIdent, true},
		{"007", KindNumber, true},
		{"1x", 0, false},
		{"a_b", 0, false},
		{":", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		kind, ok := Classify(tt.lexeme)
		assert.Equal(t, tt.ok, ok, "Classify(%q)", tt.lexeme)
		assert.Equal(t, tt.kind, kind, "Classify(%q)", tt.lexeme)
	}
}

func TestKind_Names(t *testing.T) {
	assert.Equal(t, "identsym", KindIdent.String())
	assert.Equal(t, "procsym", KindProcedure.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, 1, int(KindPeriod))

	for _, k := range Kinds() {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok, "ParseKind(%q)", k.String())
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKind("nosuchsym")
	assert.False(t, ok)

	_, err := Kind(0).MarshalText()
	assert.Error(t, err)
}

func TestToken_Encoding(t *testing.T) {
	tok := Token{Kind: KindNumber, Text: "0042", Value: 42, Filename: "a.pl0", Line: 3, Column: 7}

	data, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"numbersym","text":"0042","value":42,"file":"a.pl0","line":3,"column":7}`, string(data))

	var back Token
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tok, back)

	out, err := yaml.Marshal(Token{Kind: KindBecomes, Text: ":=", Line: 1, Column: 2})
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: becomessym")

	assert.Equal(t, "a.pl0:3:7", tok.Pos().String())
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
	assert.Equal(t, "numbersym(42)", tok.String())
	assert.False(t, Position{}.IsValid())
}

func TestSource_UnreadTwicePanics(t *testing.T) {
	s := newSource("", nil, nil)
	s.pending = true
	assert.Panics(t, func() { s.unread() })
}
