package builtin

import (
	"github.com/achronyme/core/environment"
	"github.com/achronyme/core/kernel/linalg"
	"github.com/achronyme/core/value"
)

const (
	defaultMaxIter = 200
	defaultTol     = 1e-10
)

func luRecord(r linalg.LUResult) value.Record {
	return value.NewRecord([]string{"L", "U", "P"}, map[string]value.Value{
		"L": r.L, "U": r.U, "P": r.P,
	})
}

func qrRecord(r linalg.QRResult) value.Record {
	return value.NewRecord([]string{"Q", "R"}, map[string]value.Value{
		"Q": r.Q, "R": r.R,
	})
}

func svdRecord(r linalg.SVDResult) value.Record {
	return value.NewRecord([]string{"U", "S", "V"}, map[string]value.Value{
		"U": r.U, "S": value.NewVector(r.S), "V": r.V,
	})
}

// registerDecompositions binds the matrix factorizations. Each factors
// a single Matrix argument; lu, qr and svd return a Record and cholesky
// returns its L factor as a plain Matrix. The Lu/Qr/Svd field
// accessors below take that Record back apart since the grammar has no
// field-access syntax to reach into it directly.
func registerDecompositions(env *environment.Environment) {
	bind(env, "lu", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "lu")
		if err != nil {
			return nil, err
		}
		r, err := linalg.LU(m)
		if err != nil {
			return nil, err
		}
		return luRecord(r), nil
	})
	bind(env, "luL", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "L", "luL") })
	bind(env, "luU", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "U", "luU") })
	bind(env, "luP", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "P", "luP") })

	bind(env, "qr", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "qr")
		if err != nil {
			return nil, err
		}
		return qrRecord(linalg.QR(m)), nil
	})
	bind(env, "qrQ", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "Q", "qrQ") })
	bind(env, "qrR", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "R", "qrR") })

	bind(env, "cholesky", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "cholesky")
		if err != nil {
			return nil, err
		}
		return linalg.Cholesky(m)
	})

	bind(env, "svd", 1, 1, func(args []value.Value) (value.Value, error) {
		m, err := matrixArg(args, "svd")
		if err != nil {
			return nil, err
		}
		r, err := linalg.SVD(m, defaultMaxIter, defaultTol)
		if err != nil {
			return nil, err
		}
		return svdRecord(r), nil
	})
	bind(env, "svdU", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "U", "svdU") })
	bind(env, "svdS", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "S", "svdS") })
	bind(env, "svdV", 1, 1, func(args []value.Value) (value.Value, error) { return recordField(args[0], "V", "svdV") })
}
