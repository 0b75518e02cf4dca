package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env. Flags, when
// set explicitly, override these values last.
type Config struct {
	// Input is the path to the input file; empty means standard input.
	Input string `json:"input" yaml:"input"`
	// Output is the path to the output file; empty means standard output.
	Output string `json:"output" yaml:"output"`

	// Patterns are regular expressions combined with OR.
	Patterns []string `json:"patterns" yaml:"patterns"`
	// Filters are CEL expressions combined with OR alongside Patterns.
	Filters []string `json:"filters" yaml:"filters"`
	// PatternFiles are paths to YAML pattern files.
	PatternFiles []string `json:"patternFiles" yaml:"patternFiles"`

	// Before is the number of context lines kept ahead of a match.
	Before int `json:"before" yaml:"before"`
	// After is the number of context lines emitted after a match.
	After int `json:"after" yaml:"after"`

	// MaxLineBytes caps a single input line; longer lines are skipped.
	MaxLineBytes int `json:"maxLineBytes" yaml:"maxLineBytes"`
	// GzipAutoDetect transparently decompresses gzip input.
	GzipAutoDetect bool `json:"gzip" yaml:"gzip"`

	// LogLevel and LogFormat drive the diagnostic logger.
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	LogFormat string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Before:         0,
		After:          0,
		MaxLineBytes:   1 << 20,
		GzipAutoDetect: true,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		// JSON is the default format, extension or not.
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate rejects values the scanner cannot run with.
func (c Config) Validate() error {
	if c.Before < 0 {
		return fmt.Errorf("before must be non-negative, got %d", c.Before)
	}
	if c.After < 0 {
		return fmt.Errorf("after must be non-negative, got %d", c.After)
	}
	if c.MaxLineBytes < 0 {
		return fmt.Errorf("max line bytes must be non-negative, got %d", c.MaxLineBytes)
	}
	return nil
}
