package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestHandler_FlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(&buf, slog.LevelDebug))

	logger.WithGroup("turn").With("seq", 7).Info("decoded", "bots", 4)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if payload["msg"] != "decoded" {
		t.Fatalf("msg=%v want decoded", payload["msg"])
	}
	if payload["level"] != "INFO" {
		t.Fatalf("level=%v want INFO", payload["level"])
	}
	if payload["turn.seq"] != float64(7) {
		t.Fatalf("turn.seq=%v want 7", payload["turn.seq"])
	}
	if payload["turn.bots"] != float64(4) {
		t.Fatalf("turn.bots=%v want 4", payload["turn.bots"])
	}
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(New(&buf, slog.LevelWarn))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record written despite warn level: %s", buf.String())
	}
	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Fatalf("warn record was dropped")
	}
}
