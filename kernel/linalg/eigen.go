/*
File    : achronyme/kernel/linalg/eigen.go

Eigenvalue algorithms: power iteration for the single dominant
eigenpair, and a shifted QR algorithm used both to list eigenvalues of a
general square matrix and, restricted to symmetric input, to build a
full eigendecomposition with orthogonal eigenvectors.
*/
package linalg

import (
	"math"
	"sort"

	"github.com/achronyme/core/errs"
	"github.com/achronyme/core/value"
)

// PowerIteration finds the dominant eigenvalue/eigenvector pair of the
// square matrix m by repeated multiplication and normalization,
// converging when ||A*v - lambda*v|| / ||v|| < tol. Fails with
// NonConvergent if that bound is not reached within maxIter steps.
func PowerIteration(m value.Matrix, maxIter int, tol float64) (eigenvalue float64, eigenvector []float64, err error) {
	if m.Rows != m.Cols {
		return 0, nil, errs.New(errs.ShapeError, "power iteration requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	if n == 0 {
		return 0, nil, errs.New(errs.InvalidArgument, "power iteration requires a non-empty matrix")
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}
	normalize(v)

	var lambda float64
	for iter := 0; iter < maxIter; iter++ {
		av := matVec(m, v)
		lambda = dot(v, av)

		residual := make([]float64, n)
		for i := range residual {
			residual[i] = av[i] - lambda*v[i]
		}
		if norm2(residual) < tol*math.Max(norm2(v), 1e-300) {
			return lambda, av_normalized(av), nil
		}
		normalize(av)
		v = av
	}
	return 0, nil, errs.New(errs.NonConvergent, "power iteration did not converge within %d iterations", maxIter)
}

func av_normalized(av []float64) []float64 {
	out := make([]float64, len(av))
	copy(out, av)
	normalize(out)
	return out
}

func matVec(m value.Matrix, v []float64) []float64 {
	out := make([]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		var sum float64
		for c := 0; c < m.Cols; c++ {
			sum += m.At(r, c) * v[c]
		}
		out[r] = sum
	}
	return out
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm2(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func normalize(v []float64) {
	n := norm2(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

// QREigenvalues returns the eigenvalues of a general square matrix via
// the shifted QR algorithm: repeatedly factor A - mu*I = Q*R and replace
// A with R*Q + mu*I, mu being the Wilkinson shift of the trailing 2x2
// block (see wilkinsonShift), which converges (for diagonalizable A with distinct-modulus
// eigenvalues) to an upper triangular matrix whose diagonal holds the
// eigenvalues. Convergence is judged by the sub-diagonal mass falling
// below tol. Complex-conjugate eigenvalue pairs of a non-symmetric
// matrix show up as unconverged 2x2 blocks; this routine is intended
// for the symmetric case where that never happens, and reports
// NonConvergent if the sub-diagonal has not decayed within maxIter.
func QREigenvalues(m value.Matrix, maxIter int, tol float64) ([]float64, error) {
	if m.Rows != m.Cols {
		return nil, errs.New(errs.ShapeError, "eigenvalues require a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	a := ToRows(m)

	for iter := 0; iter < maxIter; iter++ {
		shift := wilkinsonShift(a)
		for i := 0; i < n; i++ {
			a[i][i] -= shift
		}
		q, r := qrRows(a, n, n)
		a = matMulRows(r, q)
		for i := 0; i < n; i++ {
			a[i][i] += shift
		}

		if subdiagonalNorm(a) < tol {
			return diagonal(a), nil
		}
	}
	return nil, errs.New(errs.NonConvergent, "QR eigenvalue algorithm did not converge within %d iterations", maxIter)
}

// EigResult holds the symmetric eigendecomposition m = V*diag(Values)*V^T.
type EigResult struct {
	Values  []float64
	Vectors value.Matrix // eigenvectors as columns, paired with Values by index
}

// Eig computes the full eigendecomposition of a symmetric matrix via the
// shifted QR algorithm, accumulating the orthogonal transforms into the
// eigenvector matrix. Results are sorted by descending eigenvalue.
// Fails with NotSPD-unrelated errors: TypeError if m is not symmetric,
// NonConvergent if the iteration does not settle within maxIter.
func Eig(m value.Matrix, maxIter int, tol float64) (EigResult, error) {
	if m.Rows != m.Cols {
		return EigResult{}, errs.New(errs.ShapeError, "eigendecomposition requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	if !IsSymmetric(m, 1e-9) {
		return EigResult{}, errs.New(errs.TypeError, "eigendecomposition is only supported for symmetric matrices")
	}
	n := m.Rows
	a := ToRows(m)
	v := identityRows(n)

	for iter := 0; iter < maxIter; iter++ {
		shift := wilkinsonShift(a)
		for i := 0; i < n; i++ {
			a[i][i] -= shift
		}
		q, r := qrRows(a, n, n)
		a = matMulRows(r, q)
		for i := 0; i < n; i++ {
			a[i][i] += shift
		}
		v = matMulRows(v, q)

		if subdiagonalNorm(a) < tol {
			values, vectors := sortDescending(diagonal(a), v)
			return EigResult{Values: values, Vectors: FromRows(vectors)}, nil
		}
	}
	return EigResult{}, errs.New(errs.NonConvergent, "eigendecomposition did not converge within %d iterations", maxIter)
}

func matMulRows(a, b [][]float64) [][]float64 {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}

func identityRows(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return out
}

func subdiagonalNorm(a [][]float64) float64 {
	var sum float64
	for i := 1; i < len(a); i++ {
		for j := 0; j < i; j++ {
			sum += a[i][j] * a[i][j]
		}
	}
	return math.Sqrt(sum)
}

// wilkinsonShift returns the eigenvalue of a's trailing 2x2 block nearest
// its bottom-right entry (that entry itself if the block's eigenvalues are complex).
func wilkinsonShift(a [][]float64) float64 {
	n := len(a)
	d := a[n-1][n-1]
	if n < 2 {
		return d
	}
	delta, p := (a[n-2][n-2]-d)/2, a[n-2][n-1]*a[n-1][n-2]
	if disc := delta*delta + p; disc >= 0 {
		if denom := delta + math.Copysign(math.Sqrt(disc), delta); denom != 0 {
			return d - p/denom
		}
	}
	return d
}

func diagonal(a [][]float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i][i]
	}
	return out
}

// sortDescending reorders eigenvalues and the matching eigenvector
// columns of v together, so the pairing never drifts out of lockstep.
func sortDescending(values []float64, v [][]float64) ([]float64, [][]float64) {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return values[idx[i]] > values[idx[j]] })

	sortedValues := make([]float64, n)
	sortedVectors := make([][]float64, n)
	for i := range sortedVectors {
		sortedVectors[i] = make([]float64, n)
	}
	for newCol, oldCol := range idx {
		sortedValues[newCol] = values[oldCol]
		for row := 0; row < n; row++ {
			sortedVectors[row][newCol] = v[row][oldCol]
		}
	}
	return sortedValues, sortedVectors
}
