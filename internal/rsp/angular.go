package rsp

import (
	"math"
)

const twoPi = 2 * math.Pi

// ShiftAngle wraps the circular offset of angle from center into [-π, π).
// The result is correct for any real input, including angles that are many
// multiples of 2π away from the center.
func ShiftAngle(angle, center float64) float64 {
	shifted := math.Mod(angle-center+math.Pi, twoPi)
	if shifted < 0 {
		shifted += twoPi
	}
	return shifted - math.Pi
}

// ShiftAngles wraps every angle in the slice relative to center.
// See ShiftAngle.
func ShiftAngles(angles []float64, center float64) []float64 {
	shifted := make([]float64, len(angles))
	for i, a := range angles {
		shifted[i] = ShiftAngle(a, center)
	}
	return shifted
}

// ValidateWindow checks that a scanning window width lies in (0, 2π].
func ValidateWindow(width float64) error {
	if !(width > 0 && width <= twoPi) {
		return ErrWindowRange
	}
	return nil
}

// WithinWindow reports whether theta falls inside the angular window of the
// given width centered on center. Width must be in (0, 2π].
func WithinWindow(theta, center, width float64) (bool, error) {
	if err := ValidateWindow(width); err != nil {
		return false, err
	}
	return math.Abs(ShiftAngle(theta, center)) <= width/2, nil
}

// WithinWindowMask evaluates WithinWindow for every angle in theta,
// returning a boolean mask aligned by index.
func WithinWindowMask(theta []float64, center, width float64) ([]bool, error) {
	if err := ValidateWindow(width); err != nil {
		return nil, err
	}
	mask := make([]bool, len(theta))
	for i, t := range theta {
		mask[i] = math.Abs(ShiftAngle(t, center)) <= width/2
	}
	return mask, nil
}

// ScanCenters returns n evenly spaced scan centers covering the full circle,
// starting at -π. Returns nil for n < 1.
func ScanCenters(n int) []float64 {
	if n < 1 {
		return nil
	}
	centers := make([]float64, n)
	step := twoPi / float64(n)
	for i := range centers {
		centers[i] = -math.Pi + float64(i)*step
	}
	return centers
}

// linspace returns count+1 evenly spaced edges from lo to hi inclusive.
func linspace(lo, hi float64, count int) []float64 {
	edges := make([]float64, count+1)
	step := (hi - lo) / float64(count)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[count] = hi
	return edges
}
