package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		logLevel   string
		logFunc    func(*ConsoleLogger, string)
		message    string
		wantOutput bool
	}{
		{name: "debug passes at debug level", logLevel: "debug", logFunc: (*ConsoleLogger).LogDebug, message: "strategy attempt", wantOutput: true},
		{name: "debug filtered at info level", logLevel: "info", logFunc: (*ConsoleLogger).LogDebug, message: "strategy attempt", wantOutput: false},
		{name: "trace filtered at debug level", logLevel: "debug", logFunc: (*ConsoleLogger).LogTrace, message: "noise", wantOutput: false},
		{name: "error passes at error level", logLevel: "error", logFunc: (*ConsoleLogger).LogError, message: "boom", wantOutput: true},
		{name: "warn filtered at error level", logLevel: "error", logFunc: (*ConsoleLogger).LogWarn, message: "meh", wantOutput: false},
		{name: "info passes at default level", logLevel: "", logFunc: (*ConsoleLogger).LogInfo, message: "hello", wantOutput: true},
		{name: "invalid level falls back to info", logLevel: "bogus", logFunc: (*ConsoleLogger).LogDebug, message: "hidden", wantOutput: false},
		{name: "level is case-insensitive", logLevel: "DEBUG", logFunc: (*ConsoleLogger).LogDebug, message: "shown", wantOutput: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.logLevel)
			tt.logFunc(cl, tt.message)

			got := buf.String()
			if tt.wantOutput && !strings.Contains(got, tt.message) {
				t.Errorf("expected output containing %q, got %q", tt.message, got)
			}
			if !tt.wantOutput && got != "" {
				t.Errorf("expected no output, got %q", got)
			}
		})
	}
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.LogWarn("walk truncated")

	// Buffer output is never a TTY, so no colour codes appear.
	want := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[WARN\] walk truncated\n$`)
	if !want.MatchString(buf.String()) {
		t.Errorf("output %q does not match [HH:MM:SS] [WARN] format", buf.String())
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	// Must not panic.
	cl.LogTrace("a")
	cl.LogDebug("b")
	cl.LogInfo("c")
	cl.LogWarn("d")
	cl.LogError("e")
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"trace", "trace"},
		{"DEBUG", "debug"},
		{" Warn ", "warn"},
		{"", "info"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.input); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
