package builtin

import (
	"math"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/value"
)

func registerRounding(env *environment.Environment) {
	bind(env, "floor", 1, 1, unaryScalar(math.Floor))
	bind(env, "ceil", 1, 1, unaryScalar(math.Ceil))
	bind(env, "round", 1, 1, unaryScalar(math.Round))
	bind(env, "trunc", 1, 1, unaryScalar(math.Trunc))
	bind(env, "sign", 1, 1, unaryScalar(sign))
	bind(env, "abs", 1, 1, func(args []value.Value) (value.Value, error) {
		switch v := args[0].(type) {
		case value.Complex:
			return value.Number(math.Hypot(v.Re, v.Im)), nil
		default:
			return unaryScalar(math.Abs)(args)
		}
	})
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
