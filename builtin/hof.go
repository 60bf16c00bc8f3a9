package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/lambda"
	"github.com/achronyme/core/value"
)

// registerHOF binds the higher-order combinators. Each one calls back
// into the evaluator through apply rather than through a direct import
// of package eval, which would otherwise import package builtin and
// close the cycle (see eval.New).
func registerHOF(env *environment.Environment, apply ApplyFunc) {
	bind(env, "map", 2, -1, func(args []value.Value) (value.Value, error) {
		fn, err := callableArg(args[0], "map")
		if err != nil {
			return nil, err
		}
		vecs := make([][]float64, len(args)-1)
		minLen := -1
		for i, a := range args[1:] {
			v, ok := a.(value.Vector)
			if !ok {
				return nil, errs.New(errs.TypeError, "map expects a Vector, got %s", a.Type())
			}
			vecs[i] = v.Data
			if minLen < 0 || len(v.Data) < minLen {
				minLen = len(v.Data)
			}
		}
		if fn.Arity() != len(vecs) {
			return nil, errs.New(errs.ArityMismatch, "map: function expects %d argument(s), got %d collection(s)", fn.Arity(), len(vecs))
		}
		out := make([]float64, minLen)
		for i := 0; i < minLen; i++ {
			callArgs := make([]value.Value, len(vecs))
			for j, v := range vecs {
				callArgs[j] = value.Number(v[i])
			}
			r, err := apply(fn, callArgs)
			if err != nil {
				return nil, err
			}
			n, ok := r.(value.Number)
			if !ok {
				return nil, errs.New(errs.TypeError, "map: function must return a Number, got %s", r.Type())
			}
			out[i] = float64(n)
		}
		return value.NewVector(out), nil
	})

	bind(env, "filter", 2, 2, func(args []value.Value) (value.Value, error) {
		fn, err := callableArg(args[0], "filter")
		if err != nil {
			return nil, err
		}
		v, ok := args[1].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "filter expects a Vector, got %s", args[1].Type())
		}
		out := make([]float64, 0, len(v.Data))
		for _, x := range v.Data {
			r, err := apply(fn, []value.Value{value.Number(x)})
			if err != nil {
				return nil, err
			}
			if value.IsTruthy(r) {
				out = append(out, x)
			}
		}
		return value.NewVector(out), nil
	})

	bind(env, "reduce", 3, 3, func(args []value.Value) (value.Value, error) {
		fn, err := callableArg(args[0], "reduce")
		if err != nil {
			return nil, err
		}
		acc := args[1]
		v, ok := args[2].(value.Vector)
		if !ok {
			return nil, errs.New(errs.TypeError, "reduce expects a Vector, got %s", args[2].Type())
		}
		for _, x := range v.Data {
			acc, err = apply(fn, []value.Value{acc, value.Number(x)})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	bind(env, "pipe", 1, -1, func(args []value.Value) (value.Value, error) {
		fns := make([]value.Value, len(args)-1)
		copy(fns, args[1:])
		acc := args[0]
		for _, fn := range fns {
			c, err := callableArg(fn, "pipe")
			if err != nil {
				return nil, err
			}
			acc, err = apply(c, []value.Value{acc})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	bind(env, "compose", 1, -1, func(args []value.Value) (value.Value, error) {
		fns := make([]lambda.Callable, len(args))
		for i, a := range args {
			c, err := callableArg(a, "compose")
			if err != nil {
				return nil, err
			}
			fns[i] = c
		}
		return &lambda.Builtin{
			Name:    "<composed>",
			MinArgs: 1,
			MaxArgs: 1,
			Fn: func(callArgs []value.Value) (value.Value, error) {
				acc := callArgs[0]
				var err error
				for i := len(fns) - 1; i >= 0; i-- {
					acc, err = apply(fns[i], []value.Value{acc})
					if err != nil {
						return nil, err
					}
				}
				return acc, nil
			},
		}, nil
	})
}

func callableArg(v value.Value, fn string) (lambda.Callable, error) {
	c, ok := v.(lambda.Callable)
	if !ok {
		return nil, errs.New(errs.TypeError, "%s expects a function argument, got %s", fn, v.Type())
	}
	return c, nil
}
