package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays TRAWL_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("TRAWL_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv("TRAWL_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("TRAWL_PATTERNS"); v != "" {
		cfg.Patterns = splitList(v)
	}
	if v := os.Getenv("TRAWL_PATTERN_FILES"); v != "" {
		cfg.PatternFiles = splitList(v)
	}
	if v := os.Getenv("TRAWL_BEFORE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Before = n
		}
	}
	if v := os.Getenv("TRAWL_AFTER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.After = n
		}
	}
	if v := os.Getenv("TRAWL_MAX_LINE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLineBytes = n
		}
	}
	if v := os.Getenv("TRAWL_GZIP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GzipAutoDetect = b
		}
	}
	if v := os.Getenv("TRAWL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRAWL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// splitList parses a comma-separated value, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
