package match

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PatternFile is a YAML document listing regular-expression patterns.
//
// Example file:
//
//	version: 1
//	patterns:
//	  - id: error
//	    regex: 'level=(error|fatal)'
//	  - id: timeout
//	    regex: 'deadline exceeded'
type PatternFile struct {
	// Version is the file format version. Only version 1 exists today.
	Version int `yaml:"version"`

	// Patterns are applied in file order.
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern is a single entry of a pattern file. The ID must be unique within
// the file and appears in compile errors; Regex is the expression itself.
type Pattern struct {
	ID    string `yaml:"id"`
	Regex string `yaml:"regex"`
}

// LoadPatternFile reads and validates one pattern file. Entries are not
// compiled here; Compile consumes them in file order.
func LoadPatternFile(path string) (PatternFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return PatternFile{}, fmt.Errorf("read pattern file: %w", err)
	}
	var pf PatternFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return PatternFile{}, fmt.Errorf("parse pattern file %s: %w", path, err)
	}
	if pf.Version != 1 {
		return PatternFile{}, fmt.Errorf("pattern file %s: unsupported version %d", path, pf.Version)
	}
	seen := make(map[string]struct{}, len(pf.Patterns))
	for _, p := range pf.Patterns {
		if p.ID == "" {
			return PatternFile{}, fmt.Errorf("pattern file %s: entry with empty id", path)
		}
		if _, dup := seen[p.ID]; dup {
			return PatternFile{}, fmt.Errorf("pattern file %s: duplicate pattern id %q", path, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Regex == "" {
			return PatternFile{}, fmt.Errorf("pattern file %s: pattern %q has no regex", path, p.ID)
		}
	}
	return pf, nil
}
