package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	log.WithFields(map[string]any{"rule": "input-group", "widget_type": "text"}).Debug("rule applied")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["message"] != "rule applied" || entry["rule"] != "input-group" || entry["widget_type"] != "text" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["level"] != "debug" {
		t.Fatalf("expected debug level, got %v", entry["level"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("hidden")
	log.Debug("hidden")
	if strings.TrimSpace(buf.String()) != "" {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.Error(errors.New("boom"), "failed")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error field, got %v", entry)
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.Error(errors.New("ignored"), "ignored")
	if log.WithFields(map[string]any{"a": 1}) != nil {
		t.Fatalf("expected nil derived logger")
	}
	Nop().Warn("ignored")
}
