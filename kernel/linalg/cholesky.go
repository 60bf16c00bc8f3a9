/*
File    : achronyme/kernel/linalg/cholesky.go

Cholesky factorization: for a symmetric positive-definite A, finds
lower-triangular L such that A = L*L^T. Rejects non-SPD input.
*/
package linalg

import (
	"math"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// Cholesky factors m as L*L^T, failing with NotSPD if m is not symmetric
// positive-definite.
func Cholesky(m value.Matrix) (value.Matrix, error) {
	if m.Rows != m.Cols {
		return value.Matrix{}, errs.New(errs.NotSPD, "cholesky requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	if !IsSymmetric(m, 1e-9) {
		return value.Matrix{}, errs.New(errs.NotSPD, "cholesky requires a symmetric matrix")
	}

	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := m.At(i, j)
			for k := 0; k < j; k++ {
				sum -= l[i][k] * l[j][k]
			}
			if i == j {
				if sum <= 0 {
					return value.Matrix{}, errs.New(errs.NotSPD, "cholesky requires a positive-definite matrix")
				}
				l[i][j] = math.Sqrt(sum)
			} else {
				l[i][j] = sum / l[j][j]
			}
		}
	}
	return FromRows(l), nil
}
