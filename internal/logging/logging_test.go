package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")

	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	logger.Warn().Str("slot", "09:30").Msg("visible")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line: %v", err)
	}
	if entry["slot"] != "09:30" {
		t.Errorf("expected slot field, got %v", entry["slot"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "loud")

	logger.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatal("expected debug to be filtered at info level")
	}
	logger.Info().Msg("shown")
	if buf.Len() == 0 {
		t.Fatal("expected info entry")
	}
}
