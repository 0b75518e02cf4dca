// Package match builds and evaluates the predicate set that selects lines.
//
// A Set is an ordered collection of compiled Matchers combined with OR:
// a record is selected when any matcher accepts it. Order never changes
// which records are selected; it only fixes which compilation failure is
// reported first, so the same bad invocation always produces the same
// error. An empty Set selects nothing.
//
// Two matcher kinds exist: regular expressions (inline or loaded from YAML
// pattern files) and CEL expressions over the record's text, size, and
// ordinal.
//
// Example:
//
//	set, err := match.Compile(match.CompileOptions{
//	    Exprs:   []string{`level=(error|fatal)`},
//	    Filters: []string{`size > 120 && !text.contains("healthz")`},
//	})
//	if err != nil {
//	    return err
//	}
//	set.MatchAny(match.Record{Num: 1, Text: "level=error boom"}) // true
package match
