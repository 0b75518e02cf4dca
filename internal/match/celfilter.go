package match

import (
	"errors"
	"strings"

	"github.com/google/cel-go/cel"
)

// celFilter wraps a compiled CEL program evaluated once per record. The
// expression sees three variables: text (the line), size (its length in
// bytes), and num (the 1-based line ordinal).
type celFilter struct {
	prog cel.Program
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{}, errors.New("empty filter expression")
	}
	env, err := cel.NewEnv(
		cel.Variable("text", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("num", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog}, nil
}

// Match evaluates the expression against rec. Runtime evaluation errors and
// non-boolean results count as no-match rather than failing the scan.
func (f celFilter) Match(rec Record) bool {
	out, _, err := f.prog.Eval(map[string]any{
		"text": rec.Text,
		"size": int64(len(rec.Text)),
		"num":  rec.Num,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
