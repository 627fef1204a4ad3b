// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     report
// Description: Styles for the token table
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/plzero/pkg/lexer"
)

// Color Palette - shared with the token browser
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// styles binds the table styles to one renderer so color detection
// follows the output writer rather than os.Stdout.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	number  lipgloss.Style
	keyword lipgloss.Style
	symbol  lipgloss.Style
	ident   lipgloss.Style
	literal lipgloss.Style
	eof     lipgloss.Style
	err     lipgloss.Style
	fatal   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		header:  r.NewStyle().Bold(true).Underline(true),
		number:  r.NewStyle().Foreground(ColorMuted),
		keyword: r.NewStyle().Foreground(ColorPrimary).Bold(true),
		symbol:  r.NewStyle().Foreground(ColorAccent),
		ident:   r.NewStyle().Foreground(ColorText),
		literal: r.NewStyle().Foreground(ColorSecondary),
		eof:     r.NewStyle().Foreground(ColorMuted).Italic(true),
		err:     r.NewStyle().Foreground(ColorError),
		fatal:   r.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// plainStyles renders everything unstyled
func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{s, s, s, s, s, s, s, s, s, s}
}

// forKind picks the style of a token kind
func (s styles) forKind(kind lexer.Kind) lipgloss.Style {
	switch {
	case kind == lexer.KindEOF:
		return s.eof
	case kind == lexer.KindIdent:
		return s.ident
	case kind == lexer.KindNumber:
		return s.literal
	case kind.IsReserved():
		if lit, ok := lexer.Literal(kind); ok && lexer.IsKeyword(lit) {
			return s.keyword
		}
		return s.symbol
	default:
		return s.ident
	}
}
