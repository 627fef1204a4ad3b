// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, persistent fields,
//              error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial logger tests
// - 2025-03-02 v0.2.0: Rewritten for the trimmed logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	plerror "github.com/msto63/plzero/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: level, Format: format, Output: &buf})
	return logger, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries:\n%s", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown warn") {
		t.Errorf("missing warn entry:\n%s", out)
	}
	if !strings.Contains(out, "[ERR]") || !strings.Contains(out, "shown error") {
		t.Errorf("missing error entry:\n%s", out)
	}
}

func TestLogger_Discard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger should not enable any level")
	}
	logger.Error("nothing")
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithName("lexer").
		WithCorrelationID("session-1").
		WithField("file", "a.pl0").
		Debug("token", Fields{"kind": "identsym", "line": 2})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "token",
		"logger":         "lexer",
		"correlation_id": "session-1",
		"file":           "a.pl0",
		"kind":           "identsym",
		"line":           float64(2),
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.Info("scan", Fields{"zeta": 1, "alpha": 2, "mid": 3})

	if !strings.Contains(buf.String(), "[alpha=2 mid=3 zeta=1]") {
		t.Errorf("fields not sorted: %s", buf.String())
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	_ = parent.WithField("child", true).WithLevel(LevelError)

	parent.Info("parent entry")

	out := buf.String()
	if strings.Contains(out, "child=") {
		t.Errorf("parent picked up child field: %s", out)
	}
	if !strings.Contains(out, "parent entry") {
		t.Errorf("parent level changed: %s", out)
	}
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		level     Level
		wantShort string
	}{
		{"lexical goes to debug", plerror.New("bad").WithCode(plerror.CodeLexical), LevelTrace, "[DBG]"},
		{"open failure goes to error", plerror.New("open").WithCode(plerror.CodeOpenFailed), LevelTrace, "[ERR]"},
		{"plain error warns", errors.New("plain"), LevelTrace, "[WRN]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.level, FormatText)
			logger.LogError(tt.err)
			if !strings.Contains(buf.String(), tt.wantShort) {
				t.Errorf("LogError() output %q, want level %s", buf.String(), tt.wantShort)
			}
			if !strings.Contains(buf.String(), "error_code=") {
				t.Errorf("LogError() output missing error_code: %q", buf.String())
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(NewEntry(LevelError, "boom"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), LevelError.Color()) {
		t.Errorf("missing color prefix: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(NewEntry(LevelError, "boom"))
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors not disabled: %q", out)
	}
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("tokenize").WithField("file", "a.pl0")
	if timer.Stop() < 0 {
		t.Error("Stop() returned negative duration")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	out := buf.String()
	if strings.Count(out, "tokenize completed") != 1 {
		t.Errorf("expected exactly one completion entry:\n%s", out)
	}
	if !strings.Contains(out, "file=a.pl0") || !strings.Contains(out, "operation=tokenize") {
		t.Errorf("missing timer fields:\n%s", out)
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)

	logger.StartTimer("tokenize").StopWithError(errors.New("read failed"))

	if !strings.Contains(buf.String(), "tokenize failed") {
		t.Errorf("missing failure entry: %s", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{
		"trace": LevelTrace, "DEBUG": LevelDebug, "": LevelInfo,
		"warning": LevelWarn, "err": LevelError, "off": LevelOff,
	}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	formats := map[string]Format{"json": FormatJSON, "Text": FormatText, "console": FormatConsole}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
