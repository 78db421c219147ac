package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"datasplit/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unsupported level")
	}
}

func TestConsoleLoggerRendersComponentAndSubject(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "splitter").With(
		logging.String(logging.FieldRunID, "0123456789abcdef"),
	)
	logger.Info("copied split", logging.String(logging.FieldSplit, "train"), logging.Int("files", 4))

	out := buf.String()
	for _, want := range []string{"INFO", "[splitter]", "run 01234567 · train", "copied split", "- files: 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, "- component:") || strings.Contains(out, "- run_id:") {
		t.Fatalf("expected component and run_id to be folded into the header, got %q", out)
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Debug("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestConsoleLoggerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("copy failed", logging.Error(errors.New("disk full")), logging.String("path", ""))
	out := buf.String()
	if !strings.Contains(out, `- error: "disk full"`) {
		t.Fatalf("expected quoted error, got %q", out)
	}
	if !strings.Contains(out, `- path: ""`) {
		t.Fatalf("expected quoted empty value, got %q", out)
	}
}

func TestJSONLoggerUsesStableKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("split complete", logging.Int("train", 4))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["level"] != "info" {
		t.Fatalf("level = %v, want info", record["level"])
	}
	if record["msg"] != "split complete" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
	if record["train"] != float64(4) {
		t.Fatalf("train = %v, want 4", record["train"])
	}
}

func TestJSONLoggerAddsSourceOnlyAtDebug(t *testing.T) {
	for _, tt := range []struct {
		level      string
		wantSource bool
	}{
		{level: "info", wantSource: false},
		{level: "debug", wantSource: true},
	} {
		var buf bytes.Buffer
		logger, err := logging.New(logging.Options{Format: "json", Level: tt.level, Output: &buf})
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		logger.Warn("low space")

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("decode json log: %v", err)
		}
		source, ok := record["source"].(string)
		if ok != tt.wantSource {
			t.Fatalf("level %s: source present = %v, want %v (%v)", tt.level, ok, tt.wantSource, record)
		}
		if ok && !strings.Contains(source, "logger_test.go:") {
			t.Fatalf("level %s: source = %q", tt.level, source)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should never be enabled")
	}
	logger.Error("ignored")
}
