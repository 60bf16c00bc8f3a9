package builtin

import (
	"math"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/kernel/numeric"
	"github.com/achronyme/core/value"
)

func registerPowerRoot(env *environment.Environment) {
	bind(env, "sqrt", 1, 1, unaryScalar(math.Sqrt))
	bind(env, "cbrt", 1, 1, unaryScalar(math.Cbrt))
	bind(env, "pow", 2, 2, func(args []value.Value) (value.Value, error) {
		return numeric.Binary(numeric.Pow, args[0], args[1])
	})
}
