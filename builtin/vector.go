package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/numeric"
	"github.com/achronyme/core/value"
)

func twoVectorArgs(args []value.Value, fn string) ([]float64, []float64, error) {
	a, ok1 := args[0].(value.Vector)
	b, ok2 := args[1].(value.Vector)
	if !ok1 || !ok2 {
		return nil, nil, errs.New(errs.TypeError, "%s expects two Vectors", fn)
	}
	return a.Data, b.Data, nil
}

func registerVector(env *environment.Environment) {
	bind(env, "dot", 2, 2, func(args []value.Value) (value.Value, error) {
		a, b, err := twoVectorArgs(args, "dot")
		if err != nil {
			return nil, err
		}
		d, err := numeric.Dot(a, b)
		if err != nil {
			return nil, err
		}
		return value.Number(d), nil
	})
	bind(env, "cross", 2, 2, func(args []value.Value) (value.Value, error) {
		a, b, err := twoVectorArgs(args, "cross")
		if err != nil {
			return nil, err
		}
		c, err := numeric.Cross(a, b)
		if err != nil {
			return nil, err
		}
		return value.NewVector(c), nil
	})
	bind(env, "norm", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "norm")
		if err != nil {
			return nil, err
		}
		return value.Number(numeric.Norm(data)), nil
	})
	bind(env, "normalize", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "normalize")
		if err != nil {
			return nil, err
		}
		n, err := numeric.Normalize(data)
		if err != nil {
			return nil, err
		}
		return value.NewVector(n), nil
	})
	bind(env, "linspace", 3, 3, func(args []value.Value) (value.Value, error) {
		start, ok1 := args[0].(value.Number)
		stop, ok2 := args[1].(value.Number)
		count, ok3 := args[2].(value.Number)
		if !ok1 || !ok2 || !ok3 {
			return nil, errs.New(errs.TypeError, "linspace expects (start, stop, n)")
		}
		data, err := numeric.Linspace(float64(start), float64(stop), int(count))
		if err != nil {
			return nil, err
		}
		return value.NewVector(data), nil
	})
}
