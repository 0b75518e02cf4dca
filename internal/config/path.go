package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the first existing well-known config file, or
// the empty string when none exists. It prefers standard locations and
// falls back to a dotfile in the user's home directory.
func DefaultConfigPath() string {
	var candidates []string

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates,
			filepath.Join(xdg, "trawl", "config.yaml"),
			filepath.Join(xdg, "trawl", "config.json"),
		)
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		candidates = append(candidates,
			filepath.Join(homeDir, ".config", "trawl", "config.yaml"),
			filepath.Join(homeDir, ".config", "trawl", "config.json"),
			filepath.Join(homeDir, ".trawl.yaml"),
		)
	}

	for _, path := range candidates {
		if isFile(path) {
			return path
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
