package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want=%v", in, got, want)
		}
	}
}

func TestNewJSONTo_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo)

	logger.Debug("dropped", "k", "v")
	logger.InfoContext(context.Background(), "feed cache cleared", "removed", 3, "error", errors.New("boom"), "dangling")
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.UnmarshalString(lines[0], &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "feed cache cleared" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["removed"] != float64(3) || entry["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", entry)
	}
	if v, ok := entry["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key with nil value: %v", entry)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	previous := Default()
	SetDefault(NewJSONTo(&buf, LevelDebug))
	t.Cleanup(func() { SetDefault(previous) })

	var logger *Logger
	logger.Warn("from nil logger")

	if !strings.Contains(buf.String(), "from nil logger") {
		t.Fatalf("expected default logger output, got %q", buf.String())
	}
}
