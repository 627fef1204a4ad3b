// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     report
// Description: Writers rendering token listings as table, JSON, YAML or text
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	plerror "github.com/msto63/plzero/foundation/core/error"
	"github.com/msto63/plzero/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// Writer renders listings to an output stream
type Writer interface {
	Write(w io.Writer, listings ...Listing) error
}

// ForFormat returns the writer for a format name: table, json, yaml or
// plain. Color only affects the table.
func ForFormat(name string, color bool) (Writer, error) {
	switch strings.ToLower(name) {
	case "table", "":
		return &Table{Color: color}, nil
	case "json":
		return &JSON{Indent: "  "}, nil
	case "yaml", "yml":
		return &YAML{}, nil
	case "plain", "text":
		return &Plain{}, nil
	default:
		return nil, plerror.Newf("unknown output format %q", name).
			WithCode(plerror.CodeInvalidInput).
			WithDetail("format", name)
	}
}

// Table column widths
const (
	widthNumber = 6
	widthName   = 12
	widthLine   = 5
	widthColumn = 6
)

// Table prints the classic token table, one row per token, with lexical
// errors inline at their source position.
type Table struct {
	Color bool
}

// Write implements Writer
func (t *Table) Write(w io.Writer, listings ...Listing) error {
	st := plainStyles()
	if t.Color {
		st = newStyles(lipgloss.NewRenderer(w))
	}

	for i, l := range listings {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := t.writeOne(w, st, l); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) writeOne(w io.Writer, st styles, l Listing) error {
	var b strings.Builder

	b.WriteString(st.title.Render(fmt.Sprintf("Tokens from file %s:", displayName(l.File))))
	b.WriteString("\n")

	header := fmt.Sprintf("%*s  %-*s  %*s  %*s  %s",
		widthNumber, "Number",
		widthName, "Name",
		widthLine, "Line",
		widthColumn, "Column",
		"Text/Value")
	b.WriteString(st.header.Render(header))
	b.WriteString("\n")

	n := 0
	for _, it := range l.Items() {
		if it.Error != nil {
			b.WriteString(st.err.Render(it.Error.Message))
			b.WriteString("\n")
			continue
		}

		n++
		tok := it.Token
		b.WriteString(st.number.Render(fmt.Sprintf("%*d", widthNumber, n)))
		b.WriteString("  ")
		b.WriteString(st.forKind(tok.Kind).Render(fmt.Sprintf("%-*s", widthName, tok.Kind)))
		b.WriteString(fmt.Sprintf("  %*d  %*d  ", widthLine, tok.Line, widthColumn, tok.Column))
		b.WriteString(st.forKind(tok.Kind).Render(TextOrValue(*tok)))
		b.WriteString("\n")
	}

	if l.Fatal != "" {
		b.WriteString(st.fatal.Render(displayName(l.File) + ": " + l.Fatal))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// TextOrValue is the last table column: the value of a number, the text
// of any other token and nothing for EOF.
func TextOrValue(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindNumber:
		return strconv.FormatInt(tok.Value, 10)
	case lexer.KindEOF:
		return ""
	default:
		return tok.Text
	}
}

func displayName(file string) string {
	if file == "" {
		return "<stdin>"
	}
	return file
}

// JSON writes a single listing as an object and several as an array
type JSON struct {
	Indent string
}

// Write implements Writer
func (j *JSON) Write(w io.Writer, listings ...Listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)

	if len(listings) == 1 {
		return enc.Encode(listings[0])
	}
	if listings == nil {
		listings = []Listing{}
	}
	return enc.Encode(listings)
}

// YAML writes one document per listing
type YAML struct{}

// Write implements Writer
func (y *YAML) Write(w io.Writer, listings ...Listing) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	for _, l := range listings {
		if err := enc.Encode(l); err != nil {
			return err
		}
	}
	return enc.Close()
}

// Plain writes one tab separated line per token: kind, text, line,
// column. Errors are written as "error<TAB>message".
type Plain struct{}

// Write implements Writer
func (p *Plain) Write(w io.Writer, listings ...Listing) error {
	for _, l := range listings {
		for _, it := range l.Items() {
			var err error
			if it.Error != nil {
				_, err = fmt.Fprintf(w, "error\t%s\n", it.Error.Message)
			} else {
				tok := it.Token
				_, err = fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", tok.Kind, tok.Text, tok.Line, tok.Column)
			}
			if err != nil {
				return err
			}
		}
		if l.Fatal != "" {
			if _, err := fmt.Fprintf(w, "fatal\t%s\n", l.Fatal); err != nil {
				return err
			}
		}
	}
	return nil
}
