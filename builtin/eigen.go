package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/kernel/linalg"
	"github.com/achronyme/core/value"
)

// iterArgs reads the optional maxIter and tol arguments trailing a matrix
// argument, each defaulting to defaultMaxIter/defaultTol when omitted, per
// the specification's powerIteration(M, maxIter, tol) /
// qrEigenvalues(M, maxIter, tol) / eig(M, maxIter, tol) signatures.
func iterArgs(args []value.Value, fn string) (maxIter int, tol float64, err error) {
	maxIter, tol = defaultMaxIter, defaultTol
	if len(args) >= 2 {
		mi, ok := args[1].(value.Number)
		if !ok {
			return 0, 0, errs.New(errs.TypeError, "%s expects maxIter to be a Number", fn)
		}
		maxIter = int(mi)
	}
	if len(args) >= 3 {
		t, ok := args[2].(value.Number)
		if !ok {
			return 0, 0, errs.New(errs.TypeError, "%s expects tol to be a Number", fn)
		}
		tol = float64(t)
	}
	return maxIter, tol, nil
}

func eigRecord(r linalg.EigResult) value.Record {
	return value.NewRecord([]string{"eigenvalues", "eigenvectors"}, map[string]value.Value{
		"eigenvalues":  value.NewVector(r.Values),
		"eigenvectors": r.Vectors,
	})
}

// registerEigen binds the eigenvalue builtins: power iteration for the
// single dominant eigenpair, the raw QR eigenvalue sweep, and the full
// symmetric eigendecomposition (returned as a Record, read back with
// eigValues/eigVectors for the same reason lu/qr/svd are).
func registerEigen(env *environment.Environment) {
	bind(env, "powerIteration", 1, 3, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "powerIteration")
		if err != nil {
			return nil, err
		}
		maxIter, tol, err := iterArgs(args, "powerIteration")
		if err != nil {
			return nil, err
		}
		lambda, vec, err := linalg.PowerIteration(m, maxIter, tol)
		if err != nil {
			return nil, err
		}
		return value.NewRecord([]string{"eigenvalue", "eigenvector"}, map[string]value.Value{
			"eigenvalue":  value.Number(lambda),
			"eigenvector": value.NewVector(vec),
		}), nil
	})

	bind(env, "qrEigenvalues", 1, 3, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "qrEigenvalues")
		if err != nil {
			return nil, err
		}
		maxIter, tol, err := iterArgs(args, "qrEigenvalues")
		if err != nil {
			return nil, err
		}
		values, err := linalg.QREigenvalues(m, maxIter, tol)
		if err != nil {
			return nil, err
		}
		return value.NewVector(values), nil
	})

	bind(env, "eig", 1, 3, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "eig")
		if err != nil {
			return nil, err
		}
		maxIter, tol, err := iterArgs(args, "eig")
		if err != nil {
			return nil, err
		}
		r, err := linalg.Eig(m, maxIter, tol)
		if err != nil {
			return nil, err
		}
		return eigRecord(r), nil
	})
	bind(env, "eigValues", 1, 1, func(args []value.Value) (value.Value, error) {
		return recordField(args[0], "eigenvalues", "eigValues")
	})
	bind(env, "eigVectors", 1, 1, func(args []value.Value) (value.Value, error) {
		return recordField(args[0], "eigenvectors", "eigVectors")
	})
	bind(env, "powerIterationEigenvalue", 1, 1, func(args []value.Value) (value.Value, error) {
		return recordField(args[0], "eigenvalue", "powerIterationEigenvalue")
	})
	bind(env, "powerIterationEigenvector", 1, 1, func(args []value.Value) (value.Value, error) {
		return recordField(args[0], "eigenvector", "powerIterationEigenvector")
	})
}
