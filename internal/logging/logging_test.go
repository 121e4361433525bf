package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "json", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Error("badge failed", Err(errors.New("boom")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "badge failed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "badge failed")
	}
	if entry["err"] != "boom" {
		t.Errorf("err = %v, want %q", entry["err"], "boom")
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "text", slog.LevelDebug)

	logger.Debug("request served", "status", 200)

	out := buf.String()
	if !strings.Contains(out, "request served") || !strings.Contains(out, "status") {
		t.Errorf("unexpected text output: %q", out)
	}
}
