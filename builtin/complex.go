package builtin

import (
	"math"

	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

func asComplex(v value.Value) (value.Complex, bool) {
	switch x := v.(type) {
	case value.Complex:
		return x, true
	case value.Number:
		return value.Complex{Re: float64(x)}, true
	default:
		return value.Complex{}, false
	}
}

func registerComplex(env *environment.Environment) {
	bind(env, "complex", 2, 2, func(args []value.Value) (value.Value, error) {
		re, ok1 := args[0].(value.Number)
		im, ok2 := args[1].(value.Number)
		if !ok1 || !ok2 {
			return nil, errs.New(errs.TypeError, "complex expects two numbers")
		}
		return value.Complex{Re: float64(re), Im: float64(im)}, nil
	})
	bind(env, "real", 1, 1, func(args []value.Value) (value.Value, error) {
		c, ok := asComplex(args[0])
		if !ok {
			return nil, errs.New(errs.TypeError, "real expects a Number or Complex, got %s", args[0].Type())
		}
		return value.Number(c.Re), nil
	})
	bind(env, "imag", 1, 1, func(args []value.Value) (value.Value, error) {
		c, ok := asComplex(args[0])
		if !ok {
			return nil, errs.New(errs.TypeError, "imag expects a Number or Complex, got %s", args[0].Type())
		}
		return value.Number(c.Im), nil
	})
	bind(env, "conj", 1, 1, func(args []value.Value) (value.Value, error) {
		c, ok := asComplex(args[0])
		if !ok {
			return nil, errs.New(errs.TypeError, "conj expects a Number or Complex, got %s", args[0].Type())
		}
		return value.Complex{Re: c.Re, Im: -c.Im}, nil
	})
	bind(env, "arg", 1, 1, func(args []value.Value) (value.Value, error) {
		c, ok := asComplex(args[0])
		if !ok {
			return nil, errs.New(errs.TypeError, "arg expects a Number or Complex, got %s", args[0].Type())
		}
		return value.Number(math.Atan2(c.Im, c.Re)), nil
	})
}
