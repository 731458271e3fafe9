// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mwiater/airo/internal/analysis"
	"github.com/mwiater/airo/internal/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad covers a valid file layered over defaults, invalid YAML, an
// invalid layout and a missing explicit path.
func TestLoad(t *testing.T) {
	path := writeConfig(t, `
outputDir: out/reports
format: json
sourceOrder: [gpt, ds]
layout:
  pageHeight: 310
  rowGap: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("expected ConfigPath %q, got %q", path, cfg.ConfigPath)
	}
	if cfg.OutputPath() != "out/reports" || cfg.ExportFormat() != "json" {
		t.Fatalf("unexpected output settings: %q %q", cfg.OutputPath(), cfg.ExportFormat())
	}
	if cfg.Layout.PageHeight != 310 || cfg.Layout.RowGap != 4 {
		t.Fatalf("expected layout overrides, got %+v", cfg.Layout)
	}
	if cfg.Layout.PageWidth != 210 || cfg.Layout.RowHeight != 12 {
		t.Fatalf("expected untouched layout defaults, got %+v", cfg.Layout)
	}
	if diff := cmp.Diff([]analysis.Model{analysis.ModelChatGPT, analysis.ModelDeepSeek}, cfg.Sources()); diff != "" {
		t.Fatalf("Sources() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Label() != "AIRO Report" {
		t.Fatalf("expected default label, got %q", cfg.Label())
	}

	if _, err := Load(writeConfig(t, "layout: [")); err == nil {
		t.Fatal("Load() with invalid YAML should have failed")
	}

	badLayout := writeConfig(t, "layout:\n  marginLeft: 200\n")
	if _, err := Load(badLayout); err == nil || !strings.Contains(err.Error(), "horizontal content area") {
		t.Fatalf("expected layout validation error, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("AIRO_FORMAT", "json.gz")
	t.Setenv("AIRO_BATCHWORKERS", "9")

	cfg, err := Load(writeConfig(t, "format: html\n"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ExportFormat() != "json.gz" {
		t.Fatalf("expected environment to override file, got %q", cfg.ExportFormat())
	}
	if cfg.Workers() != 9 {
		t.Fatalf("expected 9 workers, got %d", cfg.Workers())
	}
}

func TestValidateRejectsUnknownSource(t *testing.T) {
	cfg := Defaults()
	cfg.SourceOrder = []string{"gm", "claude", "average"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{`"claude"`, `"average"`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}
}

func TestAccessorDefaults(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "airo.log" {
		t.Fatalf("LogFilePath() = %q", cfg.LogFilePath())
	}
	if cfg.OutputPath() != "reports" {
		t.Fatalf("OutputPath() = %q", cfg.OutputPath())
	}
	if cfg.ExportFormat() != "html" {
		t.Fatalf("ExportFormat() = %q", cfg.ExportFormat())
	}
	if cfg.Workers() != 4 {
		t.Fatalf("Workers() = %d", cfg.Workers())
	}
	if cfg.Footer() != "Generated via Torneta AIRO Platform" {
		t.Fatalf("Footer() = %q", cfg.Footer())
	}
	if diff := cmp.Diff(analysis.DefaultSourceOrder, cfg.Sources()); diff != "" {
		t.Fatalf("Sources() mismatch (-want +got):\n%s", diff)
	}
	if m, ok := cfg.Measurer().(layout.RuneMeasurer); !ok || m.Advance != 0 {
		t.Fatalf("unexpected measurer %#v", cfg.Measurer())
	}
}

func TestSourcesDeduplicates(t *testing.T) {
	cfg := Config{SourceOrder: []string{"gemini", "gm", "dp"}}
	want := []analysis.Model{analysis.ModelGemini, analysis.ModelDeepSeek}
	if diff := cmp.Diff(want, cfg.Sources()); diff != "" {
		t.Fatalf("Sources() mismatch (-want +got):\n%s", diff)
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", Defaults())
	out := buf.String()
	for _, want := range []string{
		"No config file loaded (using defaults).",
		"Format:         html",
		"Source Order:   ds, gm, gpt",
		"Page:           210x297 mm",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	ShowConfig(&buf, "config/config.yaml", Defaults())
	if !strings.HasPrefix(buf.String(), "Config file: config/config.yaml") {
		t.Fatalf("expected config file header, got:\n%s", buf.String())
	}
}
