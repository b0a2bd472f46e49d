// stats/stats.go

// Package stats computes descriptive statistics over a small sample of
// float64 values. The functions are pure: they never log, never perform I/O
// and never mutate their input.
package stats

import (
	"errors"
	"math"
)

// ErrEmptyInput is returned by every operation when the sample has no values.
// Variance and StandardDeviation return this exact value, unwrapped.
var ErrEmptyInput = errors.New("empty input")

// Sample is an ordered sequence of values. Callers own it; the functions in
// this package only read from it.
type Sample []float64

// Mean returns the arithmetic mean of the sample. NaN and infinities
// propagate through ordinary float64 arithmetic.
func Mean(s Sample) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), nil
}

// Variance returns the population variance of the sample (divisor n, not
// n-1), computed in two passes over the values.
func Variance(s Sample) (float64, error) {
	mean, err := Mean(s)
	if err != nil {
		return 0, err
	}
	var sumsq float64
	for _, v := range s {
		d := v - mean
		sumsq += d * d
	}
	return sumsq / float64(len(s)), nil
}

// StandardDeviation returns the square root of the population variance.
func StandardDeviation(s Sample) (float64, error) {
	variance, err := Variance(s)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}
