/*
File    : achronyme/kernel/linalg/svd.go

Singular value decomposition via the eigendecomposition of the smaller
Gram matrix (A^T*A or A*A^T, whichever has fewer rows): its eigenvectors
give one of U or V directly, its eigenvalues give the squared singular
values, and the other factor follows by one matrix-vector product per
singular value. A = U*diag(S)*V^T (thin form: S has length min(rows,cols)).
*/
package linalg

import (
	"math"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// SVDResult holds svd(M) -> {U, S, V}. S is the vector of singular
// values in descending order; U and V have S's length as their column
// count, so that U * diag(S) * V^T reconstructs M.
type SVDResult struct {
	U value.Matrix
	S []float64
	V value.Matrix
}

// SVD computes the thin singular value decomposition of m.
func SVD(m value.Matrix, maxIter int, tol float64) (SVDResult, error) {
	if m.Rows == 0 || m.Cols == 0 {
		return SVDResult{}, errs.New(errs.InvalidArgument, "svd requires a non-empty matrix")
	}

	if m.Cols <= m.Rows {
		// V comes from eigenvectors of the n x n Gram matrix A^T*A.
		gram, err := MatMul(Transpose(m), m)
		if err != nil {
			return SVDResult{}, err
		}
		eig, err := Eig(gram, maxIter, tol)
		if err != nil {
			return SVDResult{}, err
		}
		k := m.Cols
		s := singularValuesFrom(eig.Values)
		v := eig.Vectors
		u := make([]float64, m.Rows*k)
		for col := 0; col < k; col++ {
			vCol := columnOf(v, col)
			av := matVec(m, vCol)
			if s[col] > 1e-12 {
				for i := range av {
					av[i] /= s[col]
				}
			}
			for row := 0; row < m.Rows; row++ {
				u[row*k+col] = av[row]
			}
		}
		return SVDResult{U: value.NewMatrix(m.Rows, k, u), S: s, V: v}, nil
	}

	// U comes from eigenvectors of the m x m Gram matrix A*A^T.
	gram, err := MatMul(m, Transpose(m))
	if err != nil {
		return SVDResult{}, err
	}
	eig, err := Eig(gram, maxIter, tol)
	if err != nil {
		return SVDResult{}, err
	}
	k := m.Rows
	s := singularValuesFrom(eig.Values)
	u := eig.Vectors
	mt := Transpose(m)
	v := make([]float64, m.Cols*k)
	for col := 0; col < k; col++ {
		uCol := columnOf(u, col)
		atu := matVec(mt, uCol)
		if s[col] > 1e-12 {
			for i := range atu {
				atu[i] /= s[col]
			}
		}
		for row := 0; row < m.Cols; row++ {
			v[row*k+col] = atu[row]
		}
	}
	return SVDResult{U: u, S: s, V: value.NewMatrix(m.Cols, k, v)}, nil
}

func singularValuesFrom(eigenvalues []float64) []float64 {
	s := make([]float64, len(eigenvalues))
	for i, lambda := range eigenvalues {
		if lambda < 0 {
			lambda = 0
		}
		s[i] = math.Sqrt(lambda)
	}
	return s
}

func columnOf(m value.Matrix, col int) []float64 {
	out := make([]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		out[r] = m.At(r, col)
	}
	return out
}
