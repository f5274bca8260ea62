package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept warn")
	logger.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("high-level messages missing: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "terminput"})

	logger.WithComponent("decoder").Info("resync after %d bytes", 42)

	out := buf.String()
	if !strings.Contains(out, "component=decoder") {
		t.Errorf("field missing: %q", out)
	}
	if !strings.Contains(out, "resync after 42 bytes") {
		t.Errorf("formatted message missing: %q", out)
	}
	if !strings.Contains(out, "terminput") {
		t.Errorf("prefix missing: %q", out)
	}
}

func TestNullLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	NullLogger.SetOutput(&buf)
	NullLogger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("NullLogger wrote %q", buf.String())
	}
}
