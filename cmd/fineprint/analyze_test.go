package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/fineprint/internal/config"
	"github.com/nao1215/fineprint/internal/report"
)

// riskyPolicyText is long enough to analyze and carries risk language.
const riskyPolicyText = `By using this service you agree that we may sell your data to
third parties without notice. Continued use constitutes acceptance of
any future changes to these terms.`

// TestNewAnalyzeCmd tests the analyze command creation.
func TestNewAnalyzeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "analyze [file]" {
			t.Errorf("expected use 'analyze [file]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"config", "json", "markdown", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %q flag", name)
			}
		}
	})
}

// TestRunAnalyzeCmd tests the analyze command execution end to end.
func TestRunAnalyzeCmd(t *testing.T) {
	t.Run("analyzes file and writes JSON report", func(t *testing.T) {
		tmpDir := t.TempDir()
		inputPath := filepath.Join(tmpDir, "terms.txt")
		outputPath := filepath.Join(tmpDir, "report.json")
		if err := os.WriteFile(inputPath, []byte(riskyPolicyText), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{"-j", "-o", outputPath, inputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		var decoded report.VersionedReport
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if decoded.Manual == nil {
			t.Fatal("report carries no manual result")
		}
		if decoded.Manual.Assessment.LevelText != "RISKY" {
			t.Errorf("LevelText = %q, want RISKY", decoded.Manual.Assessment.LevelText)
		}
		if !strings.Contains(decoded.Manual.Summary.Text, "Policy contains") {
			t.Errorf("Summary = %q, want heuristic sentence", decoded.Manual.Summary.Text)
		}
	})

	t.Run("reads text from stdin", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputPath := filepath.Join(tmpDir, "report.json")

		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader(riskyPolicyText))
		cmd.SetArgs([]string{"-j", "-o", outputPath, "-"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(outputPath); err != nil {
			t.Errorf("report file missing: %v", err)
		}
	})

	t.Run("empty input is an error", func(t *testing.T) {
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("   \n\t  "))
		cmd.SetArgs([]string{"-"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Errorf("error = %v, want empty-input error", err)
		}
	})

	t.Run("short input is an error", func(t *testing.T) {
		cmd := NewAnalyzeCmd()
		cmd.SetIn(strings.NewReader("too short to analyze"))
		cmd.SetArgs([]string{"-"})

		err := cmd.Execute()
		if err == nil || !strings.Contains(err.Error(), "too short") {
			t.Errorf("error = %v, want too-short error", err)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		cmd := NewAnalyzeCmd()
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})
}

// TestBuildProviders tests provider set construction from configuration.
func TestBuildProviders(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("empty config yields empty set", func(t *testing.T) {
		t.Parallel()

		set := buildProviders(config.NewConfig(), logger)
		if !set.Empty() {
			t.Error("Empty() = false, want true")
		}
	})

	t.Run("maps roles to set fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.File.Providers = map[string]config.ProviderConfig{
			"condense": {Endpoint: "https://summarize.example.com/v1/condense", Token: "secret"},
			"reframe":  {Endpoint: "https://summarize.example.com/v1/reframe"},
			"polish":   {Endpoint: "https://summarize.example.com/v1/polish"},
		}

		set := buildProviders(cfg, logger)
		if set.Condense == nil {
			t.Error("Condense not configured")
		}
		if set.Reframe == nil {
			t.Error("Reframe not configured")
		}
		if set.Polish == nil {
			t.Error("Polish not configured")
		}
	})

	t.Run("skips unknown roles and empty endpoints", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		warnLogger := slog.New(slog.NewTextHandler(&buf, nil))

		cfg := config.NewConfig()
		cfg.File.Providers = map[string]config.ProviderConfig{
			"summarize": {Endpoint: "https://summarize.example.com/v1/summarize"},
			"condense":  {},
		}

		set := buildProviders(cfg, warnLogger)
		if !set.Empty() {
			t.Error("Empty() = false, want true for unknown role and missing endpoint")
		}
		if !strings.Contains(buf.String(), "skipping") {
			t.Errorf("expected skip warnings in log output: %s", buf.String())
		}
	})
}
