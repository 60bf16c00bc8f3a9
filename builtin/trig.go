package builtin

import (
	"math"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/numeric"
	"github.com/achronyme/core/value"
)

// unaryScalar wraps a plain float64 -> float64 function so it applies
// element-wise over a Vector or Matrix and directly over a Number, per
// the specification's "vectorized scalar-fn contract".
func unaryScalar(f func(float64) float64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		return numeric.UnaryScalar(f, args[0])
	}
}

func registerTrig(env *environment.Environment) {
	bind(env, "sin", 1, 1, unaryScalar(math.Sin))
	bind(env, "cos", 1, 1, unaryScalar(math.Cos))
	bind(env, "tan", 1, 1, unaryScalar(math.Tan))
	bind(env, "asin", 1, 1, unaryScalar(math.Asin))
	bind(env, "acos", 1, 1, unaryScalar(math.Acos))
	bind(env, "atan", 1, 1, unaryScalar(math.Atan))
	bind(env, "sinh", 1, 1, unaryScalar(math.Sinh))
	bind(env, "cosh", 1, 1, unaryScalar(math.Cosh))
	bind(env, "tanh", 1, 1, unaryScalar(math.Tanh))
	bind(env, "atan2", 2, 2, func(args []value.Value) (value.Value, error) {
		y, ok1 := args[0].(value.Number)
		x, ok2 := args[1].(value.Number)
		if !ok1 || !ok2 {
			return nil, errs.New(errs.TypeError, "atan2 expects two numbers")
		}
		return value.Number(math.Atan2(float64(y), float64(x))), nil
	})
}
