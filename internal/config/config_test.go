package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Before != 0 || cfg.After != 0 {
		t.Fatalf("context defaults should be zero")
	}
	if cfg.MaxLineBytes != 1<<20 {
		t.Fatalf("max line bytes default")
	}
	if !cfg.GzipAutoDetect {
		t.Fatalf("gzip auto-detect should default on")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log defaults")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "trawl.json")
	data := []byte(`{"input":"in.log","patterns":["ERROR","WARN"],"before":2,"after":3,"gzip":false}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Input != "in.log" {
		t.Fatalf("expected in.log")
	}
	if !slices.Equal(cfg.Patterns, []string{"ERROR", "WARN"}) {
		t.Fatalf("patterns = %v", cfg.Patterns)
	}
	if cfg.Before != 2 || cfg.After != 3 {
		t.Fatalf("before/after = %d/%d", cfg.Before, cfg.After)
	}
	if cfg.GzipAutoDetect {
		t.Fatalf("expected gzip off")
	}
	// Untouched keys keep their defaults.
	if cfg.MaxLineBytes != 1<<20 {
		t.Fatalf("max line bytes should keep default")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "trawl.yaml")
	data := []byte("output: out.log\npatterns:\n  - ERROR\nbefore: 1\nlogLevel: debug\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "out.log" {
		t.Fatalf("expected out.log")
	}
	if !slices.Equal(cfg.Patterns, []string{"ERROR"}) {
		t.Fatalf("patterns = %v", cfg.Patterns)
	}
	if cfg.Before != 1 {
		t.Fatalf("before = %d", cfg.Before)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if cfg.MaxLineBytes != want.MaxLineBytes || cfg.GzipAutoDetect != want.GzipAutoDetect || cfg.LogLevel != want.LogLevel {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("TRAWL_INPUT", "env.log")
	t.Setenv("TRAWL_PATTERNS", "ERROR, WARN ,")
	t.Setenv("TRAWL_BEFORE", "4")
	t.Setenv("TRAWL_GZIP", "false")
	t.Setenv("TRAWL_LOG_LEVEL", "debug")
	FromEnv(&cfg)
	if cfg.Input != "env.log" {
		t.Fatalf("env override input")
	}
	if !slices.Equal(cfg.Patterns, []string{"ERROR", "WARN"}) {
		t.Fatalf("env patterns = %v", cfg.Patterns)
	}
	if cfg.Before != 4 {
		t.Fatalf("env override before")
	}
	if cfg.GzipAutoDetect {
		t.Fatalf("env override gzip")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override log level")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	cfg.Before = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative before")
	}
	cfg = Default()
	cfg.After = -2
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative after")
	}
}
