/*
File    : achronyme/kernel/linalg/lu.go

LU decomposition with partial pivoting: P*A = L*U, L unit-lower-triangular,
U upper-triangular, P a permutation matrix. Fails with Singular when a
zero pivot survives partial pivoting.
*/
package linalg

import (
	"math"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// luDecompose runs Doolittle's algorithm with partial pivoting on a'
// private copy of rows, returning L, U and the row permutation p (such
// that permuted original row p[i] became row i of L/U), plus the number
// of row swaps performed (for determinant sign).
func luDecompose(rows [][]float64) (l, u [][]float64, p []int, swaps int, err error) {
	n := len(rows)
	u = cloneRows(rows)
	l = make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}
	p = make([]int, n)
	for i := range p {
		p[i] = i
	}

	for k := 0; k < n; k++ {
		// Partial pivot: find the largest-magnitude entry in column k at
		// or below row k.
		maxRow, maxVal := k, math.Abs(u[k][k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(u[i][k]); v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal == 0 {
			return nil, nil, nil, 0, errs.New(errs.Singular, "matrix is singular: zero pivot in column %d", k)
		}
		if maxRow != k {
			u[k], u[maxRow] = u[maxRow], u[k]
			l[k], l[maxRow] = l[maxRow], l[k]
			p[k], p[maxRow] = p[maxRow], p[k]
			swaps++
		}

		l[k][k] = 1
		for i := k + 1; i < n; i++ {
			factor := u[i][k] / u[k][k]
			l[i][k] = factor
			for j := k; j < n; j++ {
				u[i][j] -= factor * u[k][j]
			}
		}
	}
	return l, u, p, swaps, nil
}

// LUResult holds the decomposition lu(M) -> {L, U, P} exposes to the
// expression language.
type LUResult struct {
	L, U, P value.Matrix
}

// LU factors m as P*m = L*U with partial pivoting.
func LU(m value.Matrix) (LUResult, error) {
	if m.Rows != m.Cols {
		return LUResult{}, errs.New(errs.ShapeError, "LU decomposition requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	l, u, p, _, err := luDecompose(ToRows(m))
	if err != nil {
		return LUResult{}, err
	}
	n := m.Rows
	perm := make([]float64, n*n)
	for i, src := range p {
		perm[i*n+src] = 1
	}
	return LUResult{
		L: FromRows(l),
		U: FromRows(u),
		P: value.NewMatrix(n, n, perm),
	}, nil
}
