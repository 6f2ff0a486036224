package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).Named("usecase.award").With("year_month", "2025-03")

	logger.Warn("skipped malformed quarter", "match_id", "m-1", "quarter", 2, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.LoggerName != "usecase.award" {
		t.Fatalf("unexpected logger name %q", entry.LoggerName)
	}
	fields := entry.ContextMap()
	if fields["year_month"] != "2025-03" || fields["match_id"] != "m-1" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	logger.Info("ignored")
	logger.InfoContext(context.Background(), "ignored")
	logger.ErrorContext(context.Background(), "kept")

	if logs.Len() != 1 {
		t.Fatalf("expected one entry, got %d", logs.Len())
	}
}

func TestNewJSONWriter_AddsServiceField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo, "club-stats")
	logger.Info("ready", "addr", ":8080")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["service"] != "club-stats" || line["msg"] != "ready" || line["addr"] != ":8080" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{"debug": LevelDebug, "": LevelInfo, "WARN": LevelWarn, "error": LevelError}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", raw, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

