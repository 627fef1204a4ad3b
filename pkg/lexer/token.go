// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     lexer
// Description: Token kinds, tokens and source positions
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package lexer

import (
	"fmt"
	"strconv"
)

// Kind is the category of a token. The order follows the classic PL/0
// token_type enumeration so numeric codes match existing tooling.
type Kind int

const (
	KindPeriod    Kind = iota + 1 // .
	KindConst                     // const
	KindSemicolon                 // ;
	KindComma                     // ,
	KindVar                       // var
	KindProcedure                 // procedure
	KindBecomes                   // :=
	KindCall                      // call
	KindBegin                     // begin
	KindEnd                       // end
	KindIf                        // if
	KindThen                      // then
	KindElse                      // else
	KindWhile                     // while
	KindDo                        // do
	KindRead                      // read
	KindWrite                     // write
	KindSkip                      // skip
	KindOdd                       // odd
	KindLParen                    // (
	KindRParen                    // )
	KindIdent                     // identifier
	KindNumber                    // integer literal
	KindEq                        // =
	KindNeq                       // <>
	KindLss                       // <
	KindLeq                       // <=
	KindGtr                       // >
	KindGeq                       // >=
	KindPlus                      // +
	KindMinus                     // -
	KindMult                      // *
	KindDiv                       // /
	KindEOF                       // end of stream
)

var kindNames = [...]string{
	KindPeriod:    "periodsym",
	KindConst:     "constsym",
	KindSemicolon: "semisym",
	KindComma:     "commasym",
	KindVar:       "varsym",
	KindProcedure: "procsym",
	KindBecomes:   "becomessym",
	KindCall:      "callsym",
	KindBegin:     "beginsym",
	KindEnd:       "endsym",
	KindIf:        "ifsym",
	KindThen:      "thensym",
	KindElse:      "elsesym",
	KindWhile:     "whilesym",
	KindDo:        "dosym",
	KindRead:      "readsym",
	KindWrite:     "writesym",
	KindSkip:      "skipsym",
	KindOdd:       "oddsym",
	KindLParen:    "lparensym",
	KindRParen:    "rparensym",
	KindIdent:     "identsym",
	KindNumber:    "numbersym",
	KindEq:        "eqsym",
	KindNeq:       "neqsym",
	KindLss:       "lessym",
	KindLeq:       "leqsym",
	KindGtr:       "gtrsym",
	KindGeq:       "geqsym",
	KindPlus:      "plussym",
	KindMinus:     "minussym",
	KindMult:      "multsym",
	KindDiv:       "divsym",
	KindEOF:       "eofsym",
}

// String returns the classic PL/0 name of the kind, e.g. "identsym"
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsValid reports whether k is one of the defined kinds
func (k Kind) IsValid() bool {
	return k >= KindPeriod && k <= KindEOF
}

// IsReserved reports whether k is matched by literal text
// (keywords, punctuation and operators).
func (k Kind) IsReserved() bool {
	return k.IsValid() && k != KindIdent && k != KindNumber && k != KindEOF
}

// Kinds returns all kinds in enumeration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(KindEOF))
	for k := KindPeriod; k <= KindEOF; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given classic name
func ParseKind(name string) (Kind, bool) {
	for k := KindPeriod; k <= KindEOF; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// MarshalText encodes the kind by name for JSON and YAML output
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown token kind %q", text)
	}
	*k = kind
	return nil
}

// Position is a 1-based location in a named source
type Position struct {
	Filename string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
}

// String formats the position as file:line:column
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// IsValid reports whether the position has a line and column
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Token is one classified lexeme
type Token struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Text     string `json:"text" yaml:"text"`
	Value    int64  `json:"value,omitempty" yaml:"value,omitempty"` // only for KindNumber
	Filename string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
}

// Pos returns the position of the token's first character
func (t Token) Pos() Position {
	return Position{Filename: t.Filename, Line: t.Line, Column: t.Column}
}

// String returns a compact representation of the token
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "EOF"
	case KindNumber:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}
