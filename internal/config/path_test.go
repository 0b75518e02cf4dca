package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigPathXDG(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "trawl")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	file := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(file, []byte("before: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := DefaultConfigPath(); got != file {
		t.Fatalf("path = %q, want %q", got, file)
	}
}

func TestDefaultConfigPathPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "trawl")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yamlFile := filepath.Join(cfgDir, "config.yaml")
	jsonFile := filepath.Join(cfgDir, "config.json")
	for _, f := range []string{yamlFile, jsonFile} {
		if err := os.WriteFile(f, []byte("{}"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := DefaultConfigPath(); got != yamlFile {
		t.Fatalf("path = %q, want %q", got, yamlFile)
	}
}

func TestDefaultConfigPathMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if got := DefaultConfigPath(); got != "" {
		t.Fatalf("path = %q, want empty", got)
	}
}
