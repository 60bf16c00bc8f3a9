package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/linalg"
	"github.com/achronyme/core/value"
)

func matrixArg(args []value.Value, fn string) (value.Matrix, error) {
	m, ok := args[0].(value.Matrix)
	if !ok {
		return value.Matrix{}, errs.New(errs.TypeError, "%s expects a Matrix, got %s", fn, args[0].Type())
	}
	return m, nil
}

func registerMatrix(env *environment.Environment) {
	bind(env, "transpose", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "transpose")
		if err != nil {
			return nil, err
		}
		return linalg.Transpose(m), nil
	})
	bind(env, "det", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "det")
		if err != nil {
			return nil, err
		}
		d, err := linalg.Det(m)
		if err != nil {
			return nil, err
		}
		return value.Number(d), nil
	})
	bind(env, "inverse", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "inverse")
		if err != nil {
			return nil, err
		}
		inv, err := linalg.Inverse(m)
		if err != nil {
			return nil, err
		}
		return inv, nil
	})
	bind(env, "trace", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "trace")
		if err != nil {
			return nil, err
		}
		t, err := linalg.Trace(m)
		if err != nil {
			return nil, err
		}
		return value.Number(t), nil
	})
	bind(env, "identity", 1, 1, func(args []value.Value) (value.Value, error) {
		n, ok := args[0].(value.Number)
		if !ok {
			return nil, errs.New(errs.TypeError, "identity expects a Number")
		}
		return linalg.Identity(int(n)), nil
	})
	bind(env, "isSymmetric", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "isSymmetric")
		if err != nil {
			return nil, err
		}
		return truthValue(linalg.IsSymmetric(m, 1e-9)), nil
	})
	bind(env, "isPositiveDefinite", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "isPositiveDefinite")
		if err != nil {
			return nil, err
		}
		return truthValue(linalg.IsPositiveDefinite(m)), nil
	})
}

func truthValue(b bool) value.Value {
	if b {
		return value.Number(1)
	}
	return value.Number(0)
}
