package stats

import (
	"math"
	"sort"
)

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of values, or 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Percentile calculates the p-th percentile (0-100) using linear
// interpolation between closest ranks.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// ShannonEntropy calculates the Shannon entropy of a distribution in bits.
// values may be frequency counts or probabilities; they are normalized
// internally. Returns 0 for empty or all-zero input.
func ShannonEntropy(values []float64) float64 {
	sum := Sum(values)
	if sum == 0 {
		return 0
	}
	var entropy float64
	for _, v := range values {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// CurveSummary condenses an RSP curve into its headline numbers.
type CurveSummary struct {
	PeakCenter float64 `json:"peak_center"` // scan center of the curve maximum
	PeakValue  float64 `json:"peak_value"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	P90        float64 `json:"p90"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// SummarizeCurve computes a CurveSummary for a curve aligned by index with
// its scan centers. Returns a zero summary for empty input.
func SummarizeCurve(centers, curve []float64) CurveSummary {
	if len(curve) == 0 || len(centers) != len(curve) {
		return CurveSummary{}
	}

	summary := CurveSummary{
		PeakCenter: centers[0],
		PeakValue:  curve[0],
		Min:        curve[0],
		Max:        curve[0],
	}
	for i, v := range curve {
		if v > summary.Max {
			summary.Max = v
			summary.PeakValue = v
			summary.PeakCenter = centers[i]
		}
		if v < summary.Min {
			summary.Min = v
		}
	}
	summary.Mean = Mean(curve)
	summary.Median = Percentile(curve, 50)
	summary.P90 = Percentile(curve, 90)
	return summary
}
