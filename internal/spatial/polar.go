package spatial

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
)

// ErrBadDimension is returned when a coordinate is not a 2D (x, y) pair.
var ErrBadDimension = errors.New("each coordinate must be a 2D (x, y) pair")

// Vantage is the 2D reference origin used to convert embedding coordinates
// into polar angle and radius.
type Vantage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CartesianToPolar converts Nx2 Cartesian points to polar coordinates
// relative to the vantage point. Angles are in (-π, π], radii are
// non-negative. Returns a validation error if any point is not 2D.
func CartesianToPolar(points [][]float64, vantage Vantage) (theta, r []float64, err error) {
	theta = make([]float64, len(points))
	r = make([]float64, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, nil, ErrBadDimension
		}
		dx := p[0] - vantage.X
		dy := p[1] - vantage.Y
		theta[i] = math.Atan2(dy, dx)
		r[i] = math.Hypot(dx, dy)
	}
	return theta, r, nil
}

// NormalizeAngle maps any angle in radians to the canonical (-π, π] range.
func NormalizeAngle(rad float64) float64 {
	return s1.Angle(rad).Normalized().Radians()
}

// NormalizeAngles normalizes every angle in the slice into (-π, π].
func NormalizeAngles(angles []float64) []float64 {
	out := make([]float64, len(angles))
	for i, a := range angles {
		out[i] = NormalizeAngle(a)
	}
	return out
}
