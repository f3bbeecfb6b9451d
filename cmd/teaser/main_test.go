package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/teaser/internal/config"
)

var fixturePath = filepath.Join("..", "..", "internal", "project", "testdata", "project.json")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "error"}
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		override  string
		wantError bool
	}{
		{"defaults", config.LoggingConfig{}, "", false},
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"warning alias", config.LoggingConfig{Level: "warning"}, "", false},
		{"override wins", config.LoggingConfig{Level: "bogus"}, "error", false},
		{"bad level", config.LoggingConfig{Level: "loud"}, "", true},
		{"bad format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.cfg, tt.override)
			if tt.wantError {
				if err == nil {
					t.Error("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("initializeLogger() returned nil logger")
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "teaser.log")
	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry, got %q", data)
	}
}

func TestMergeLogging(t *testing.T) {
	base := config.LoggingConfig{Level: "info", Format: "json"}
	got := mergeLogging(base, config.LoggingConfig{Format: "console"})
	if got.Level != "info" || got.Format != "console" || got.OutputFile != "" {
		t.Errorf("mergeLogging() = %+v", got)
	}
	if mergeLogging(base, config.LoggingConfig{}) != base {
		t.Error("empty override should keep base")
	}
}

func TestSectionsCommand(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected []string
	}{
		{"pretty", "pretty", []string{"=== NevaTeam Alpine Growth Fund ===", "--- Fund Strategy ---", "--- Contact Info ---"}},
		{"csv", "csv", []string{"section,label,value", "Overview,Expected IRR,12% - 15%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "sections", "--fixture", fixturePath, "--output-format", tt.format)
			if err != nil {
				t.Fatalf("sections error = %v", err)
			}
			for _, want := range tt.expected {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestSectionsCommandErrors(t *testing.T) {
	if _, err := run(t, "sections", "--fixture", fixturePath, "--output-format", "xml"); err == nil {
		t.Error("expected error for unsupported output format")
	}
	if _, err := run(t, "sections", "--fixture", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing fixture")
	}
}

func TestFieldsCommand(t *testing.T) {
	out, err := run(t, "fields",
		"--group", "COLLECTIVE_INVESTMENT", "--type", "FUND", "--listing", "HEDGE_FUND", "--market", "PRIMARY",
		"--category", "keyPerformanceIndicators")
	if err != nil {
		t.Fatalf("fields error = %v", err)
	}
	for _, want := range []string{"--- KPI's ---", "expectedIRR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "--- Fund Strategy ---") {
		t.Error("category filter should limit output to one section")
	}
}

func TestFieldsCommandCsv(t *testing.T) {
	out, err := run(t, "fields",
		"--group", "DIRECT_INVESTMENT", "--type", "DEBT", "--listing", "REAL_ESTATE", "--market", "PRIMARY",
		"--output-format", "csv")
	if err != nil {
		t.Fatalf("fields error = %v", err)
	}
	if !strings.HasPrefix(out, "category,key,label,type,required\n") {
		t.Errorf("unexpected CSV header:\n%s", out)
	}
	if !strings.Contains(out, "guaranteeLevels,") {
		t.Error("expected guarantee levels for a debt listing")
	}
}

func TestFieldsCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", []string{"fields", "--group", "DIRECT_INVESTMENT"}},
		{"unknown group", []string{"fields", "--group", "NOPE", "--type", "DEBT", "--listing", "REAL_ESTATE", "--market", "PRIMARY"}},
		{"unmapped classification", []string{"fields", "--group", "DIRECT_INVESTMENT", "--type", "CONVERTIBLE_LOAN", "--listing", "REAL_ESTATE", "--market", "PRIMARY"}},
		{"category not applicable", []string{"fields", "--group", "COLLECTIVE_INVESTMENT", "--type", "FUND", "--listing", "HEDGE_FUND", "--market", "PRIMARY", "--category", "assetInfo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"sections", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "loud", "--fixture", fixturePath})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for invalid log level")
	}
}
