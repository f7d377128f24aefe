package spatial

import (
	"math"
)

// CircularMean calculates the mean direction of angles in radians.
func CircularMean(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	var sumSin, sumCos float64
	for _, a := range angles {
		sumSin += math.Sin(a)
		sumCos += math.Cos(a)
	}
	return math.Atan2(sumSin, sumCos)
}

// MeanResultantLength calculates R, the mean resultant length.
// R ranges from 0 (uniform distribution) to 1 (all angles identical).
func MeanResultantLength(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	var sumSin, sumCos float64
	for _, a := range angles {
		sumSin += math.Sin(a)
		sumCos += math.Cos(a)
	}
	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / float64(len(angles))
}

// CircularVariance calculates the circular variance (1 - R).
func CircularVariance(angles []float64) float64 {
	return 1 - MeanResultantLength(angles)
}

// CircularStdDev calculates the circular standard deviation. It is
// unbounded as R approaches 0, so a perfectly balanced sample yields +Inf.
func CircularStdDev(angles []float64) float64 {
	r := MeanResultantLength(angles)
	if r == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(-2 * math.Log(r))
}

// RayleighP returns the approximate p-value of the Rayleigh test for
// uniformity (valid for large n).
func RayleighP(angles []float64) float64 {
	r := MeanResultantLength(angles)
	n := float64(len(angles))
	z := n * r * r
	return math.Exp(-z)
}

// IsCircularUniform reports whether the angles are consistent with a
// uniform circular distribution (Rayleigh test p-value > 0.05).
func IsCircularUniform(angles []float64) bool {
	return RayleighP(angles) > 0.05
}
