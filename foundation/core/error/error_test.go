// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              chain lookups through the standard errors package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Lexer codes, errors.As and errors.Is coverage

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap coded error",
			err:     New("inner").WithCode(CodeSourceRead),
			message: "outer",
			wantMsg: "outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrap_InheritsCodeAndDetails(t *testing.T) {
	inner := New("read failed").
		WithCode(CodeSourceRead).
		WithDetail("file", "a.pl0")

	outer := Wrap(inner, "next token")

	if outer.Code() != CodeSourceRead {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSourceRead)
	}
	if outer.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityCritical)
	}
	if v, ok := outer.Detail("file"); !ok || v != "a.pl0" {
		t.Errorf("Detail(file) = %v, %v", v, ok)
	}
}

func TestWithCode_SeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLexical, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodePrecondition, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeOpenFailed, SeverityCritical},
		{CodeCloseFailed, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithSeverity_NotOverriddenByCode(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeLexical)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCodeAndGetCode_ThroughForeignWrapper(t *testing.T) {
	coded := New("done").WithCode(CodePrecondition)
	wrapped := fmt.Errorf("calling Next: %w", coded)

	if !HasCode(wrapped, CodePrecondition) {
		t.Error("HasCode() should find the code through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, CodeLexical) {
		t.Error("HasCode() matched the wrong code")
	}
	if got := GetCode(wrapped); got != CodePrecondition {
		t.Errorf("GetCode() = %v, want %v", got, CodePrecondition)
	}
	if got := GetSeverity(wrapped); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestIs_SentinelMatching(t *testing.T) {
	sentinel := New("lexer is done").WithCode(CodePrecondition)
	same := New("lexer is done").WithCode(CodePrecondition)
	other := New("lexer is done").WithCode(CodeLexical)

	if !errors.Is(same, sentinel) {
		t.Error("errors.Is should match equal code and message")
	}
	if errors.Is(other, sentinel) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("boom"), "open failed").
		WithCode(CodeOpenFailed).
		WithOperation("lexer.Open").
		WithDetail("file", "x.pl0").
		WithDetail("attempt", 1)

	s := err.String()
	for _, want := range []string{
		"Error: open failed",
		"Code: OPEN_FAILED",
		"Severity: critical",
		"Operation: lexer.Open",
		"Details: {attempt=1, file=x.pl0}",
		"Cause: boom",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad lexeme").
		WithCode(CodeLexical).
		WithDetail("text", "12a")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "LEXICAL" {
		t.Errorf("code = %v, want LEXICAL", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
	details, _ := decoded["details"].(map[string]interface{})
	if details["text"] != "12a" {
		t.Errorf("details.text = %v, want 12a", details["text"])
	}
}

func TestCode_CategoryAndFatal(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		fatal    bool
	}{
		{CodeOpenFailed, "session", true},
		{CodePrecondition, "session", true},
		{CodeLexical, "lexical", false},
		{CodeInvalidConfig, "configuration", true},
		{CodeInvalidInput, "generic", false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %v", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.IsFatal(); got != tt.fatal {
				t.Errorf("IsFatal() = %v, want %v", got, tt.fatal)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(99):     "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), got, want)
		}
	}
	if SeverityLow.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold should be SeverityHigh")
	}
}
