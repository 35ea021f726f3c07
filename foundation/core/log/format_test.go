// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with formatter tests
// - 2026-10-16 v0.2.0: Deterministic field order, lipgloss console output

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "decode failed")
	e.Timestamp = time.Date(2026, 10, 16, 12, 30, 45, 0, time.UTC)
	e.Logger = "textkit"
	e.CorrelationID = "cid-42"
	e.WithField("zeta", "z").WithField("alpha", 1)
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %s; want %s", tt.input, got, tt.expected)
		}
		if !tt.wantErr && got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
			t.Errorf("%s.String() does not round trip %q", got, tt.input)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = mdwerror.New("bad").WithCode(mdwerror.CodeInvalidLength)

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	checks := map[string]interface{}{
		"timestamp":      "2026-10-16T12:30:45Z",
		"level":          "warn",
		"message":        "decode failed",
		"logger":         "textkit",
		"correlation_id": "cid-42",
		"zeta":           "z",
		"alpha":          float64(1),
		"error":          "bad",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v; want %v", k, data[k], want)
		}
	}
	details, ok := data["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INVALID_LENGTH" {
		t.Errorf("error_details = %v", data["error_details"])
	}
}

func TestJSONFormatterErrorField(t *testing.T) {
	e := NewEntry(LevelError, "x").WithField("cause", errors.New("boom"))

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), `"cause":"boom"`) {
		t.Errorf("error field not rendered as message: %s", out)
	}
}

func TestTextFormatter(t *testing.T) {
	out, _ := NewTextFormatter().Format(testEntry())

	want := "12:30:45 [WRN] {textkit} (cid=cid-42) decode failed [alpha=1 zeta=z]\n"
	if string(out) != want {
		t.Errorf("Format() = %q; want %q", out, want)
	}

	f := NewTextFormatter()
	f.DisableTimestamp = true
	out, _ = f.Format(NewEntry(LevelInfo, "plain"))
	if string(out) != "[INF] plain\n" {
		t.Errorf("Format() without timestamp = %q", out)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.Contains(string(out), "decode failed [alpha=1 zeta=z]") {
		t.Errorf("console output missing message: %q", out)
	}
	if !strings.Contains(string(out), "WRN") {
		t.Errorf("console output missing level: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\x1b[") {
		t.Errorf("DisableColors output contains escape codes: %q", out)
	}
	text, _ := NewTextFormatter().Format(testEntry())
	if string(out) != string(text) {
		t.Errorf("uncolored console = %q; want %q", out, text)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("oops")

	out, _ := NewLogfmtFormatter().Format(e)

	want := `timestamp=2026-10-16T12:30:45Z level=warn message="decode failed" logger=textkit correlation_id=cid-42 alpha=1 zeta="z" error="oops"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q; want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(42), "*log.JSONFormatter"},
	}

	for _, tt := range tests {
		got := GetFormatter(tt.format)
		if name := typeName(got); name != tt.want {
			t.Errorf("GetFormatter(%d) = %s; want %s", int(tt.format), name, tt.want)
		}
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	default:
		return "unknown"
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter()
	e := testEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(e)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter()
	e := testEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(e)
	}
}
