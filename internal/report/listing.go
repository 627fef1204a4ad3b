// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     report
// Description: Token listings collected from one lexer run
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package report

import (
	"errors"
	"sort"

	"github.com/msto63/plzero/pkg/lexer"
)

// ErrorRecord is a lexical error in serializable form
type ErrorRecord struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Text    string `json:"text" yaml:"text"`
	Reason  string `json:"reason" yaml:"reason"`
	Message string `json:"message" yaml:"message"`
}

// Listing is everything one file produced: its tokens in order, the
// lexical errors, and a fatal error if scanning stopped early.
type Listing struct {
	File   string        `json:"file" yaml:"file"`
	Tokens []lexer.Token `json:"tokens" yaml:"tokens"`
	Errors []ErrorRecord `json:"errors,omitempty" yaml:"errors,omitempty"`
	Fatal  string        `json:"fatal,omitempty" yaml:"fatal,omitempty"`
}

// NewListing converts the result of lexer.Tokenize or lexer.TokenizeFile
func NewListing(file string, tokens []lexer.Token, lexErrs []error, fatal error) Listing {
	l := Listing{
		File:   file,
		Tokens: tokens,
	}
	if l.Tokens == nil {
		l.Tokens = []lexer.Token{}
	}

	for _, err := range lexErrs {
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			continue
		}
		l.Errors = append(l.Errors, ErrorRecord{
			File:    lexErr.Pos.Filename,
			Line:    lexErr.Pos.Line,
			Column:  lexErr.Pos.Column,
			Text:    lexErr.Text,
			Reason:  lexErr.Reason,
			Message: lexErr.Error(),
		})
	}

	if fatal != nil {
		l.Fatal = fatal.Error()
	}

	return l
}

// Failed reports whether the listing holds any error
func (l Listing) Failed() bool {
	return len(l.Errors) > 0 || l.Fatal != ""
}

// Item is one row of a listing: either a token or a lexical error
type Item struct {
	Token *lexer.Token
	Error *ErrorRecord
}

// Items merges tokens and errors in source order
func (l Listing) Items() []Item {
	items := make([]Item, 0, len(l.Tokens)+len(l.Errors))
	for i := range l.Tokens {
		items = append(items, Item{Token: &l.Tokens[i]})
	}
	for i := range l.Errors {
		items = append(items, Item{Error: &l.Errors[i]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		li, ci := items[i].position()
		lj, cj := items[j].position()
		if li != lj {
			return li < lj
		}
		return ci < cj
	})
	return items
}

func (it Item) position() (int, int) {
	if it.Token != nil {
		return it.Token.Line, it.Token.Column
	}
	return it.Error.Line, it.Error.Column
}
