package service

import (
	"encoding/json"
	"math"
	"testing"
)

// A zero resultant length makes the circular standard deviation +Inf, which
// encoding/json refuses to marshal. The summary must drop the field instead
// of failing the whole response.
func TestSummarizeAngles_ZeroResultantOmitsStdDev(t *testing.T) {
	summary := summarizeAngles(nil)

	if summary.CircularStdDev != nil {
		t.Errorf("circular stddev = %v, want omitted for zero resultant length", *summary.CircularStdDev)
	}
	if _, err := json.Marshal(summary); err != nil {
		t.Errorf("summary must stay JSON-encodable: %v", err)
	}
}

func TestSummarizeAngles_ConcentratedSample(t *testing.T) {
	angles := make([]float64, 10)
	for i := range angles {
		angles[i] = 0.5 + 0.01*float64(i)
	}

	summary := summarizeAngles(angles)

	if summary.N != 10 {
		t.Errorf("n = %d, want 10", summary.N)
	}
	if summary.CircularStdDev == nil {
		t.Fatal("circular stddev should be present for a concentrated sample")
	}
	if math.IsInf(*summary.CircularStdDev, 0) || math.IsNaN(*summary.CircularStdDev) {
		t.Errorf("circular stddev = %v, want finite", *summary.CircularStdDev)
	}
	if math.Abs(summary.CircularMean-0.545) > 1e-3 {
		t.Errorf("circular mean = %v, want ~0.545", summary.CircularMean)
	}
	if summary.Uniform {
		t.Error("tightly clustered angles should not test as uniform")
	}
	if _, err := json.Marshal(summary); err != nil {
		t.Errorf("summary must stay JSON-encodable: %v", err)
	}
}
