package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testStringer string

func (s testStringer) String() string { return string(s) }

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "airo.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogDebug("hidden %s", "debug")
	LogExport("write", "Acme", "Acme AIRO Report.html", map[string]any{"pages": 2})
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if strings.Contains(content, "hidden debug") {
		t.Fatalf("debug entries must be filtered without debug mode, got: %s", content)
	}
	if !strings.Contains(content, `"stage":"WRITE"`) || !strings.Contains(content, `"payload":"{\"pages\":2}"`) {
		t.Fatalf("expected structured export fields, got: %s", content)
	}
}

func TestInitDebugWritesDebugEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "airo.log")
	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogDebug("visible %d", 1)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "visible 1") {
		t.Fatalf("expected debug entry, got: %s", data)
	}
}

func TestExportFieldsDefaults(t *testing.T) {
	fields := exportFields(" done ", " ", "", nil)
	got := map[string]string{}
	for _, f := range fields {
		got[f.Key] = f.String
	}
	if got["stage"] != "DONE" {
		t.Fatalf("expected uppercased stage, got %q", got["stage"])
	}
	if got["subject"] != "unknown" {
		t.Fatalf("expected default subject, got %q", got["subject"])
	}
	if _, ok := got["file"]; ok {
		t.Fatalf("empty file must be omitted")
	}
	if got["payload"] != "null" {
		t.Fatalf("expected null payload, got %q", got["payload"])
	}
}

func TestFormatPayloadVariants(t *testing.T) {
	if got := formatPayload(nil); got != "null" {
		t.Fatalf("nil payload: %s", got)
	}
	if got := formatPayload(" "); got != `""` {
		t.Fatalf("empty string payload: %s", got)
	}
	if got := formatPayload([]byte("hi")); got != "hi" {
		t.Fatalf("byte payload: %s", got)
	}
	if got := formatPayload(testStringer("ok")); got != "ok" {
		t.Fatalf("stringer payload: %s", got)
	}
	if got := formatPayload(errors.New("boom")); got != "boom" {
		t.Fatalf("error payload: %s", got)
	}
}

func TestLoggingWithoutInitIsSafe(t *testing.T) {
	_ = Close()
	LogEvent("dropped")
	LogWarn("dropped")
	if Logger() == nil {
		t.Fatalf("expected a no-op logger")
	}
}
