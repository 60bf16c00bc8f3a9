package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/numeric"
	"github.com/achronyme/core/value"
)

func vectorArg(args []value.Value, fn string) ([]float64, error) {
	v, ok := args[0].(value.Vector)
	if !ok {
		return nil, errs.New(errs.TypeError, "%s expects a Vector, got %s", fn, args[0].Type())
	}
	return v.Data, nil
}

func registerReductions(env *environment.Environment) {
	bind(env, "sum", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "sum")
		if err != nil {
			return nil, err
		}
		return value.Number(numeric.Sum(data)), nil
	})
	bind(env, "mean", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "mean")
		if err != nil {
			return nil, err
		}
		m, err := numeric.Mean(data)
		if err != nil {
			return nil, err
		}
		return value.Number(m), nil
	})
	bind(env, "std", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "std")
		if err != nil {
			return nil, err
		}
		s, err := numeric.Std(data)
		if err != nil {
			return nil, err
		}
		return value.Number(s), nil
	})
	bind(env, "min", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "min")
		if err != nil {
			return nil, err
		}
		m, err := numeric.Min(data)
		if err != nil {
			return nil, err
		}
		return value.Number(m), nil
	})
	bind(env, "max", 1, 1, func(args []value.Value) (value.Value, error) {
		data, err := vectorArg(args, "max")
		if err != nil {
			return nil, err
		}
		m, err := numeric.Max(data)
		if err != nil {
			return nil, err
		}
		return value.Number(m), nil
	})
}
