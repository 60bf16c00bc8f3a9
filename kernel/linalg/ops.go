/*
File    : achronyme/kernel/linalg/ops.go

Package linalg implements Component 10 of the core design: the matrix
algebra and decomposition kernels (transpose, determinant, inverse,
trace, identity, LU, QR, Cholesky, SVD, eigenvalues). The exported
functions take and return value.Matrix; the algorithms themselves run
over plain [][]float64 rows (see ToRows/FromRows), and nothing here
depends on the parser or evaluator, so it can be unit-tested
independently of the expression language.
*/
package linalg

import (
	"math"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// ToRows converts a row-major value.Matrix into a [][]float64 for the
// algorithms in this package, each row an independent, mutable slice.
func ToRows(m value.Matrix) [][]float64 {
	rows := make([][]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		row := make([]float64, m.Cols)
		copy(row, m.Data[r*m.Cols:(r+1)*m.Cols])
		rows[r] = row
	}
	return rows
}

// FromRows converts a [][]float64 back into a row-major value.Matrix.
func FromRows(rows [][]float64) value.Matrix {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, r*c)
	for i, row := range rows {
		copy(data[i*c:(i+1)*c], row)
	}
	return value.NewMatrix(r, c, data)
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		cp := make([]float64, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out
}

// Identity returns the n x n identity matrix.
func Identity(n int) value.Matrix {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return value.NewMatrix(n, n, data)
}

// MatMul multiplies a*b, failing with ShapeError if a's column count does
// not match b's row count.
func MatMul(a, b value.Matrix) (value.Matrix, error) {
	if a.Cols != b.Rows {
		return value.Matrix{}, errs.New(errs.ShapeError, "matrix multiplication requires %d columns to match %d rows", a.Cols, b.Rows)
	}
	data := make([]float64, a.Rows*b.Cols)
	out := value.Matrix{Rows: a.Rows, Cols: b.Cols, Data: data}
	for r := 0; r < a.Rows; r++ {
		for k := 0; k < a.Cols; k++ {
			aik := a.At(r, k)
			if aik == 0 {
				continue
			}
			for c := 0; c < b.Cols; c++ {
				out.Set(r, c, out.At(r, c)+aik*b.At(k, c))
			}
		}
	}
	return out, nil
}

// Transpose returns the transpose of m.
func Transpose(m value.Matrix) value.Matrix {
	data := make([]float64, m.Rows*m.Cols)
	out := value.Matrix{Rows: m.Cols, Cols: m.Rows, Data: data}
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements of a square matrix.
func Trace(m value.Matrix) (float64, error) {
	if m.Rows != m.Cols {
		return 0, errs.New(errs.ShapeError, "trace requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	var sum float64
	for i := 0; i < m.Rows; i++ {
		sum += m.At(i, i)
	}
	return sum, nil
}

// IsSymmetric reports whether m equals its own transpose within tol.
func IsSymmetric(m value.Matrix, tol float64) bool {
	if m.Rows != m.Cols {
		return false
	}
	for r := 0; r < m.Rows; r++ {
		for c := r + 1; c < m.Cols; c++ {
			if math.Abs(m.At(r, c)-m.At(c, r)) > tol {
				return false
			}
		}
	}
	return true
}

// IsPositiveDefinite reports whether symmetric m is positive-definite by
// attempting a Cholesky factorization.
func IsPositiveDefinite(m value.Matrix) bool {
	_, err := Cholesky(m)
	return err == nil
}

// Det computes the determinant via LU decomposition with partial
// pivoting: det(A) = (-1)^swaps * product(diag(U)).
func Det(m value.Matrix) (float64, error) {
	if m.Rows != m.Cols {
		return 0, errs.New(errs.ShapeError, "determinant requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	_, u, _, swaps, err := luDecompose(ToRows(m))
	if err != nil {
		// A zero pivot means the matrix is singular; determinant is 0.
		return 0, nil
	}
	det := 1.0
	for i := range u {
		det *= u[i][i]
	}
	if swaps%2 != 0 {
		det = -det
	}
	return det, nil
}

// Inverse computes the matrix inverse by solving A*X = I column by
// column against the LU factorization.
func Inverse(m value.Matrix) (value.Matrix, error) {
	if m.Rows != m.Cols {
		return value.Matrix{}, errs.New(errs.ShapeError, "inverse requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	l, u, p, _, err := luDecompose(ToRows(m))
	if err != nil {
		return value.Matrix{}, err
	}

	inv := make([][]float64, n)
	for i := range inv {
		inv[i] = make([]float64, n)
	}

	for col := 0; col < n; col++ {
		// Permute the col-th standard basis vector by P.
		b := make([]float64, n)
		for i := 0; i < n; i++ {
			if p[i] == col {
				b[i] = 1
			}
		}
		y := forwardSubstitute(l, b)
		x := backSubstitute(u, y)
		for i := 0; i < n; i++ {
			inv[i][col] = x[i]
		}
	}
	return FromRows(inv), nil
}

func forwardSubstitute(l [][]float64, b []float64) []float64 {
	n := len(b)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= l[i][j] * y[j]
		}
		y[i] = sum / l[i][i]
	}
	return y
}

func backSubstitute(u [][]float64, y []float64) []float64 {
	n := len(y)
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= u[i][j] * x[j]
		}
		x[i] = sum / u[i][i]
	}
	return x
}
