package match

import (
	"fmt"
	"regexp"
)

// Record is one input line as presented to predicates.
type Record struct {
	Num  int64  // 1-based ordinal of the line in the input stream
	Text string // line content without the trailing newline
}

// Matcher reports whether a record is selected.
type Matcher interface {
	Match(rec Record) bool
}

// Set is an ordered sequence of matchers combined with OR.
type Set []Matcher

// MatchAny reports whether any matcher in the set accepts rec. Evaluation
// short-circuits on the first hit. An empty set accepts nothing.
func (s Set) MatchAny(rec Record) bool {
	for _, m := range s {
		if m.Match(rec) {
			return true
		}
	}
	return false
}

// Empty reports whether the set holds no matchers.
func (s Set) Empty() bool { return len(s) == 0 }

// CompileOptions lists predicate sources. The order of the fields is also
// the error-reporting order: inline regular expressions, then CEL filters,
// then pattern files (entries in file order).
type CompileOptions struct {
	Exprs        []string // regular expressions
	Filters      []string // CEL filter expressions
	PatternFiles []string // paths to YAML pattern files
}

// Compile builds a Set from opts. Compilation stops at the first failing
// expression and returns an error naming it, so the surfaced failure is
// deterministic for a given invocation.
func Compile(opts CompileOptions) (Set, error) {
	set := make(Set, 0, len(opts.Exprs)+len(opts.Filters))
	for _, expr := range opts.Exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
		}
		set = append(set, regexMatcher{re: re})
	}
	for _, expr := range opts.Filters {
		m, err := newCELFilter(expr)
		if err != nil {
			return nil, fmt.Errorf("compile filter %q: %w", expr, err)
		}
		set = append(set, m)
	}
	for _, path := range opts.PatternFiles {
		pf, err := LoadPatternFile(path)
		if err != nil {
			return nil, err
		}
		for _, p := range pf.Patterns {
			re, err := regexp.Compile(p.Regex)
			if err != nil {
				return nil, fmt.Errorf("compile pattern %q (id %q in %s): %w", p.Regex, p.ID, path, err)
			}
			set = append(set, regexMatcher{re: re})
		}
	}
	return set, nil
}

// regexMatcher selects records whose text contains a match of re.
type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Match(rec Record) bool { return m.re.MatchString(rec.Text) }
