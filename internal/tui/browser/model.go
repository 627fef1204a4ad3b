// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     browser
// Description: Main Bubbletea model for the interactive token browser
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	plerror "github.com/msto63/plzero/foundation/core/error"
	"github.com/msto63/plzero/internal/report"
	"github.com/msto63/plzero/pkg/lexer"
)

// Model is the main Bubbletea model for the token browser
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	loading    bool
	errorsOnly bool
	err        error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Listing state
	listing report.Listing
	items   []report.Item

	// Configuration
	file  string
	lexer lexer.Config
}

// Config holds token browser configuration
type Config struct {
	File  string
	Lexer lexer.Config
}

// DefaultConfig returns default configuration for a file
func DefaultConfig(file string) Config {
	return Config{
		File:  file,
		Lexer: lexer.DefaultConfig(),
	}
}

// New creates a new token browser model
func New(cfg Config) Model {
	// Setup spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		spinner: sp,
		loading: true,
		file:    cfg.File,
		lexer:   cfg.Lexer,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTokens,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 4 // Panel border + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tokensLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.listing = msg.listing
			m.applyFilter()
			m.updateViewportContent()
			m.viewport.GotoTop()
		}
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Errors only toggle
		case "e":
			m.errorsOnly = !m.errorsOnly
			m.applyFilter()
			m.updateViewportContent()
			m.viewport.GotoTop()
			return m, nil

		// Rescan the file
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadTokens)

		// Go to top
		case "g":
			m.viewport.GotoTop()
			return m, nil

		// Go to bottom
		case "G":
			m.viewport.GotoBottom()
			return m, nil

		case "k":
			m.viewport.LineUp(1)
			return m, nil

		case "j":
			m.viewport.LineDown(1)
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading token browser..."
	}

	var b strings.Builder

	// Header with logo
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Token viewport
	b.WriteString(m.renderTokenArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and file name
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		FileStyle.Render(m.file),
	)
	if m.errorsOnly {
		header += "  " + FilterActiveStyle.Render("[errors only]")
	}

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTokenArea renders the main token viewport
func (m Model) renderTokenArea() string {
	style := PanelStyle.Width(m.width - 2)

	switch {
	case m.err != nil:
		return style.Render(ErrorStyle.Render(m.err.Error()))
	case m.loading && len(m.items) == 0:
		return style.Render(m.spinner.View() + " Scanning...")
	default:
		return style.Render(m.viewport.View())
	}
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	// Left: token and error counts
	leftPart := HelpDescStyle.Render(fmt.Sprintf("Tokens: %d", len(m.listing.Tokens)))
	errCount := len(m.listing.Errors)
	if errCount > 0 || m.listing.Fatal != "" {
		leftPart += "  " + StatusErrorStyle.Render(fmt.Sprintf("Errors: %d", errCount))
	} else {
		leftPart += "  " + StatusOKStyle.Render("No errors")
	}

	// Right: scroll position
	var rightPart string
	if m.loading {
		rightPart = m.spinner.View() + " Scanning..."
	} else {
		rightPart = HelpDescStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}

	// Calculate padding
	gap := m.width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 4
	if gap < 2 {
		gap = 2
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("↑/↓", "Scroll"),
		RenderKeyHint("PgUp/PgDn", "Page"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("e", "Errors"),
		RenderKeyHint("r", "Rescan"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the visible rows into the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, it := range m.items {
		content.WriteString(renderItem(it))
		content.WriteString("\n")
	}
	if m.listing.Fatal != "" {
		content.WriteString(ErrorStyle.Render("fatal: " + m.listing.Fatal))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderItem formats one row: position, kind and text, or the error
func renderItem(it report.Item) string {
	if it.Error != nil {
		pos := PositionStyle.Render(fmt.Sprintf("%5d:%-4d", it.Error.Line, it.Error.Column))
		return pos + " " + ErrorStyle.Render(fmt.Sprintf("%s %q", it.Error.Reason, it.Error.Text))
	}

	tok := it.Token
	pos := PositionStyle.Render(fmt.Sprintf("%5d:%-4d", tok.Line, tok.Column))
	style := KindStyle(tok.Kind)
	return pos + " " + style.Render(fmt.Sprintf("%-12s", tok.Kind)) + " " + style.Render(report.TextOrValue(*tok))
}

// applyFilter selects the rows shown in the viewport
func (m *Model) applyFilter() {
	all := m.listing.Items()
	if !m.errorsOnly {
		m.items = all
		return
	}

	m.items = make([]report.Item, 0, len(m.listing.Errors))
	for _, it := range all {
		if it.Error != nil {
			m.items = append(m.items, it)
		}
	}
}

// loadTokens scans the configured file
func (m Model) loadTokens() tea.Msg {
	tokens, lexErrs, err := lexer.TokenizeFile(m.file, m.lexer)
	if plerror.HasCode(err, plerror.CodeOpenFailed) {
		return tokensLoadedMsg{err: err}
	}
	return tokensLoadedMsg{listing: report.NewListing(m.file, tokens, lexErrs, err)}
}

// Run starts the token browser TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
