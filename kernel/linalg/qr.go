/*
File    : achronyme/kernel/linalg/qr.go

QR factorization via Householder reflections: A = Q*R, Q orthogonal,
R upper-triangular.
*/
package linalg

import (
	"math"

	"github.com/achronyme/core/value"
)

// QRResult holds qr(M) -> {Q, R}.
type QRResult struct {
	Q, R value.Matrix
}

// QR factors m via a sequence of Householder reflections.
func QR(m value.Matrix) QRResult {
	q, r := qrRows(ToRows(m), m.Rows, m.Cols)
	return QRResult{Q: FromRows(q), R: FromRows(r)}
}

// qrRows runs the same Householder reduction directly over [][]float64,
// for callers (the QR-algorithm eigensolver) that iterate it many times
// and would otherwise pay a value.Matrix round trip on every step.
func qrRows(rows [][]float64, numRows, numCols int) (q, r [][]float64) {
	// Q accumulates as the product of reflections; R is the progressively
	// triangularized copy of A.
	q = make([][]float64, numRows)
	for i := range q {
		q[i] = make([]float64, numRows)
		q[i][i] = 1
	}
	r = rows

	steps := numCols
	if numRows-1 < steps {
		steps = numRows - 1
	}

	for k := 0; k < steps; k++ {
		// Build the Householder vector that zeroes r[k+1:, k].
		normX := 0.0
		for i := k; i < numRows; i++ {
			normX += r[i][k] * r[i][k]
		}
		normX = math.Sqrt(normX)
		if normX == 0 {
			continue
		}

		alpha := -normX
		if r[k][k] < 0 {
			alpha = normX
		}

		v := make([]float64, numRows)
		v[k] = r[k][k] - alpha
		for i := k + 1; i < numRows; i++ {
			v[i] = r[i][k]
		}
		vNorm := 0.0
		for i := k; i < numRows; i++ {
			vNorm += v[i] * v[i]
		}
		if vNorm == 0 {
			continue
		}

		// R <- H_k * R, Q <- Q * H_k, with H_k = I - 2*v*v^T/(v.v).
		applyHouseholderLeft(r, v, vNorm, k)
		applyHouseholderRight(q, v, vNorm, k)
	}

	return q, r
}

// applyHouseholderLeft updates m <- (I - 2vv^T/vNorm) * m in place,
// restricted to rows k.. (v is zero above k).
func applyHouseholderLeft(m [][]float64, v []float64, vNorm float64, k int) {
	numRows := len(m)
	if numRows == 0 {
		return
	}
	numCols := len(m[0])
	for j := 0; j < numCols; j++ {
		dot := 0.0
		for i := k; i < numRows; i++ {
			dot += v[i] * m[i][j]
		}
		factor := 2 * dot / vNorm
		for i := k; i < numRows; i++ {
			m[i][j] -= factor * v[i]
		}
	}
}

// applyHouseholderRight updates m <- m * (I - 2vv^T/vNorm) in place.
func applyHouseholderRight(m [][]float64, v []float64, vNorm float64, k int) {
	numRows := len(m)
	for i := 0; i < numRows; i++ {
		dot := 0.0
		for j := k; j < len(v); j++ {
			dot += m[i][j] * v[j]
		}
		factor := 2 * dot / vNorm
		for j := k; j < len(v); j++ {
			m[i][j] -= factor * v[j]
		}
	}
}
