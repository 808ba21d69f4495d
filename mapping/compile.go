package mapping

import (
	"errors"
	"math"

	"github.com/expr-lang/expr"
)

// ErrNonFinite names the case of a compiled expression that is well-typed
// but produced a non-numeric or non-finite result at evaluation time.
// Neither Compile nor the Func it produces returns this error: the Func
// reports that case by returning NaN.
var ErrNonFinite = errors.New("mapping: expression evaluated to a non-finite value")

// env is the expression environment exposed to user formulas: the two
// coordinates of the sampled point. A map, not a struct, because expr-lang
// resolves identifiers against it by exact key — "x"/"y", lowercase, the
// way every expression in this repo (and spec.md's own convention) writes
// them — whereas a struct env is matched by its exact exported Go field
// name and would require callers to write "X"/"Y" instead.
type env map[string]any

func newEnv(x, y float64) env { return env{"x": x, "y": y} }

// Compile compiles a user-entered expression in x and y (e.g.
// "1 - 1.4*x*x + 0.3*y") into a Func. Compilation fails fast on syntax or
// type errors via expr-lang's static checker; it never fails at call time
// — a runtime evaluation error (division by zero, out-of-domain math call)
// instead yields NaN, which the core treats as out-of-bounds, per
// spec §4.2's "NaN/Inf produced by f or g is treated as out-of-bounds".
func Compile(expression string) (Func, error) {
	program, err := expr.Compile(expression, expr.Env(newEnv(0, 0)), expr.AsFloat64())
	if err != nil {
		return nil, err
	}

	return func(x, y float64) float64 {
		out, runErr := expr.Run(program, newEnv(x, y))
		if runErr != nil {
			return math.NaN()
		}
		v, ok := asFloat(out)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN()
		}
		return v
	}, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
