/*
File    : achronyme/kernel/numeric/reductions.go

Reductions over a Vector: sum, mean, std (population standard deviation),
min and max. These back the sum/mean/std/min/max built-ins.
*/
package numeric

import (
	"math"

	"github.com/achronyme/core/errs"
)

// Sum returns the sum of data, 0 for an empty vector.
func Sum(data []float64) float64 {
	total := 0.0
	for _, x := range data {
		total += x
	}
	return total
}

// Mean returns the arithmetic mean. Errors on an empty vector.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errs.New(errs.InvalidArgument, "mean requires a non-empty vector")
	}
	return Sum(data) / float64(len(data)), nil
}

// Std returns the population standard deviation.
func Std(data []float64) (float64, error) {
	mean, err := Mean(data)
	if err != nil {
		return 0, err
	}
	var variance float64
	for _, x := range data {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(data))
	return math.Sqrt(variance), nil
}

// Min returns the smallest element.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errs.New(errs.InvalidArgument, "min requires a non-empty vector")
	}
	m := data[0]
	for _, x := range data[1:] {
		if x < m {
			m = x
		}
	}
	return m, nil
}

// Max returns the largest element.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errs.New(errs.InvalidArgument, "max requires a non-empty vector")
	}
	m := data[0]
	for _, x := range data[1:] {
		if x > m {
			m = x
		}
	}
	return m, nil
}
