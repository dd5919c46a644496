package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected an error for unknown format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("probe failed",
		String("target", "example.com:80"),
		Error(errors.New("connect timeout")),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level label: %q", line)
	}
	if !strings.Contains(line, "probe failed") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "target=example.com:80") {
		t.Fatalf("missing attr: %q", line)
	}
	if !strings.Contains(line, `error="connect timeout"`) {
		t.Fatalf("missing quoted error: %q", line)
	}
}

func TestConsoleHandlerHoistsComponent(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := NewComponentLogger(slog.New(newConsoleHandler(&buf, levelVar)), "resolver")

	logger.Info("address found")

	line := buf.String()
	if !strings.Contains(line, "resolver: address found") {
		t.Fatalf("component not hoisted into prefix: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as an attr: %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("this must go nowhere", String("key", "value"))
}
