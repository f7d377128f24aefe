package rsp

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestShiftAngle_WrapsIntoHalfOpenRange(t *testing.T) {
	cases := []struct {
		name          string
		angle, center float64
		want          float64
	}{
		{"no shift", 0.5, 0, 0.5},
		{"simple offset", 1.0, 0.25, 0.75},
		{"wraps positive", 3 * math.Pi / 4, -3 * math.Pi / 4, -math.Pi / 2},
		{"wraps negative", -3 * math.Pi / 4, 3 * math.Pi / 4, math.Pi / 2},
		{"full turn", 2 * math.Pi, 0, 0},
		{"many turns", 7 * 2 * math.Pi, 0, 0},
		{"negative turns", -5 * 2 * math.Pi, 0, 0},
		{"pi maps to minus pi", math.Pi, 0, -math.Pi},
	}

	for _, c := range cases {
		got := ShiftAngle(c.angle, c.center)
		if math.Abs(got-c.want) > tol {
			t.Errorf("%s: ShiftAngle(%v, %v) = %v, want %v", c.name, c.angle, c.center, got, c.want)
		}
		if got < -math.Pi || got >= math.Pi {
			t.Errorf("%s: result %v outside [-π, π)", c.name, got)
		}
	}
}

func TestShiftAngles_AlignsByIndex(t *testing.T) {
	angles := []float64{0, math.Pi / 2, -math.Pi / 2}
	shifted := ShiftAngles(angles, math.Pi/2)
	want := []float64{-math.Pi / 2, 0, -math.Pi}
	for i := range want {
		if math.Abs(shifted[i]-want[i]) > tol {
			t.Errorf("shifted[%d] = %v, want %v", i, shifted[i], want[i])
		}
	}
	if angles[1] != math.Pi/2 {
		t.Error("input slice must not be mutated")
	}
}

func TestWithinWindow_Membership(t *testing.T) {
	in, err := WithinWindow(0.1, 0, math.Pi/2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in {
		t.Error("0.1 should be inside ±π/4 around 0")
	}

	out, err := WithinWindow(math.Pi/2, 0, math.Pi/2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out {
		t.Error("π/2 should be outside ±π/4 around 0")
	}

	// Boundary is inclusive.
	edge, err := WithinWindow(math.Pi/4, 0, math.Pi/2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !edge {
		t.Error("π/4 should be on the inclusive boundary of ±π/4")
	}
}

func TestWithinWindow_CrossesSeam(t *testing.T) {
	// Window centered on π must capture angles on both sides of the seam.
	in, err := WithinWindow(-math.Pi+0.05, math.Pi-0.05, math.Pi/4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in {
		t.Error("angles adjacent across the ±π seam must be within the window")
	}
}

func TestWithinWindow_RejectsBadWidth(t *testing.T) {
	for _, width := range []float64{0, -1, 3 * math.Pi, math.Inf(1)} {
		if _, err := WithinWindow(0, 0, width); err != ErrWindowRange {
			t.Errorf("width %v: got err %v, want ErrWindowRange", width, err)
		}
		if _, err := WithinWindowMask([]float64{0}, 0, width); err != ErrWindowRange {
			t.Errorf("mask width %v: got err %v, want ErrWindowRange", width, err)
		}
	}

	// The full circle is a valid window.
	if _, err := WithinWindow(0, 0, 2*math.Pi); err != nil {
		t.Errorf("width 2π should be valid, got %v", err)
	}
}

func TestWithinWindowMask_MatchesScalar(t *testing.T) {
	theta := []float64{-math.Pi, -1, 0, 1, 3}
	mask, err := WithinWindowMask(theta, 0.5, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range theta {
		scalar, _ := WithinWindow(v, 0.5, 1.5)
		if mask[i] != scalar {
			t.Errorf("mask[%d] = %v, scalar = %v for theta %v", i, mask[i], scalar, v)
		}
	}
}

func TestScanCenters_EvenlySpaced(t *testing.T) {
	centers := ScanCenters(8)
	if len(centers) != 8 {
		t.Fatalf("expected 8 centers, got %d", len(centers))
	}
	for i, c := range centers {
		want := -math.Pi + float64(i)*math.Pi/4
		if math.Abs(c-want) > tol {
			t.Errorf("centers[%d] = %v, want %v", i, c, want)
		}
	}
	if ScanCenters(0) != nil {
		t.Error("ScanCenters(0) should be nil")
	}
}
