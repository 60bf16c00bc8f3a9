package builtin

import (
	"math"

	"github.com/achronyme/core/environment"
)

func registerExpLog(env *environment.Environment) {
	bind(env, "exp", 1, 1, unaryScalar(math.Exp))
	bind(env, "ln", 1, 1, unaryScalar(math.Log))
	bind(env, "log", 1, 1, unaryScalar(math.Log))
	bind(env, "log10", 1, 1, unaryScalar(math.Log10))
	bind(env, "log2", 1, 1, unaryScalar(math.Log2))
}
