/*
File    : achronyme/builtin/registry.go

Package builtin implements Component 7, the declarative name -> {arity,
kernel} table the evaluator's Call dispatch resolves against: the same
role go-mix's std package plays for its scripting builtins, reduced to
the ~80 names this math language exposes and wired straight through to
the kernel/* packages rather than reimplementing any numerics here.

Builtins that must invoke a user-supplied function (map, filter,
reduce, pipe, compose) take an ApplyFunc rather than importing package
eval, which would otherwise form an import cycle (eval imports builtin
to populate its root environment).
*/
package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/lambda"
	"github.com/achronyme/core/value"
)

// ApplyFunc invokes a callable Value (a Lambda or a Builtin) with args.
// It is supplied by package eval at registration time.
type ApplyFunc func(callee value.Value, args []value.Value) (value.Value, error)

// Register binds every constant and built-in function into env.
func Register(env *environment.Environment, apply ApplyFunc) {
	registerConstants(env)
	registerTrig(env)
	registerExpLog(env)
	registerPowerRoot(env)
	registerRounding(env)
	registerReductions(env)
	registerComplex(env)
	registerVector(env)
	registerMatrix(env)
	registerDecompositions(env)
	registerEigen(env)
	registerDSP(env)
	registerHOF(env, apply)
}

// bind registers a builtin accepting between min and max arguments
// (max < 0 for variadic) under name.
func bind(env *environment.Environment, name string, min, max int, fn func([]value.Value) (value.Value, error)) {
	env.Bind(name, &lambda.Builtin{Name: name, MinArgs: min, MaxArgs: max, Fn: fn})
}
