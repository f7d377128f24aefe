package rsp

import (
	"math"
)

// RMSD computes the root-mean-square deviation between two distributions
// after normalizing each to sum to 1, making the comparison a pure shape
// comparison. The inputs may be raw count vectors or RSP curves.
//
// When either input sums to zero the normalization is undefined and NaN is
// returned; this is a legitimate "no signal" condition for empty or
// all-zero distributions, not an error. Mismatched lengths and empty
// inputs are validation errors.
//
// RMSD(a, b) == RMSD(b, a) by construction.
func RMSD(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	var sumA, sumB float64
	for _, v := range a {
		sumA += v
	}
	for _, v := range b {
		sumB += v
	}
	if sumA == 0 || sumB == 0 {
		return math.NaN(), nil
	}

	var sumSq float64
	for i := range a {
		d := a[i]/sumA - b[i]/sumB
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(a))), nil
}
