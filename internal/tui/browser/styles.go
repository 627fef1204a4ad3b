// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     browser
// Description: Styles for the token browser TUI
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package browser

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/plzero/internal/report"
	"github.com/msto63/plzero/pkg/lexer"
)

// Color Palette - same as the token table
var (
	ColorPrimary   = report.ColorPrimary
	ColorSecondary = report.ColorSecondary
	ColorAccent    = report.ColorAccent
	ColorError     = report.ColorError
	ColorMuted     = report.ColorMuted
	ColorText      = report.ColorText
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Token row styles
var (
	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SymbolStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	IdentStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	EOFStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Panel and status styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Logo
const Logo = "plzero browse"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// KindStyle picks the style for a token kind
func KindStyle(kind lexer.Kind) lipgloss.Style {
	switch {
	case kind == lexer.KindEOF:
		return EOFStyle
	case kind == lexer.KindIdent:
		return IdentStyle
	case kind == lexer.KindNumber:
		return NumberStyle
	case kind.IsReserved():
		if lit, ok := lexer.Literal(kind); ok && lexer.IsKeyword(lit) {
			return KeywordStyle
		}
		return SymbolStyle
	default:
		return IdentStyle
	}
}
