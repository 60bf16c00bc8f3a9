/*
File    : achronyme/kernel/numeric/vectorops.go

Vector-specific operations that do not fit the elementwise Binary
dispatch: inner/cross product, Euclidean norm, normalization, and the
linspace constructor.
*/
package numeric

import (
	"math"

	"github.com/achronyme/core/errs"
)

// Dot computes the inner product of two equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errs.New(errs.ShapeError, "dot requires equal-length vectors, got %d and %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Cross computes the 3-dimensional cross product.
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, errs.New(errs.InvalidArgument, "cross requires two 3-dimensional vectors")
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns v scaled to unit length.
func Normalize(v []float64) ([]float64, error) {
	n := Norm(v)
	if n == 0 {
		return nil, errs.New(errs.InvalidArgument, "normalize requires a non-zero vector")
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to stop, inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, errs.New(errs.InvalidArgument, "linspace requires n >= 1")
	}
	if n == 1 {
		return []float64{start}, nil
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = start + step*float64(i)
	}
	return out, nil
}
