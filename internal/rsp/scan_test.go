package rsp

import (
	"errors"
	"math"
	"testing"
)

// Eight background points evenly spaced around the circle with a foreground
// of four points concentrated in [-π/4, π/4]. Scanning a π/2 window at
// center 0 must report enrichment for the foreground and exactly 1 for the
// background. Areas computed by hand: bg 1.25, fg1 1.625 (coverage 0.5
// applied), so rsp_fg1 = sqrt(1.3).
func TestScan_DetectsDirectionalEnrichment(t *testing.T) {
	bg := ScanCenters(8) // -π, -3π/4, ..., 3π/4
	fg1 := []float64{-math.Pi / 4, 0, 0, math.Pi / 4}

	res, err := Scan(fg1, bg, nil, Params{
		Window:     math.Pi / 2,
		Resolution: 4,
		Centers:    []float64{0},
		Mode:       ModeAbsolute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.Coverage-0.5) > tol {
		t.Errorf("coverage = %v, want 0.5", res.Coverage)
	}
	if res.BG[0] != 1.0 {
		t.Errorf("rsp_bg[0] = %v, want exactly 1.0", res.BG[0])
	}
	if res.FG1[0] <= 1.0 {
		t.Errorf("rsp_fg1[0] = %v, want > 1 for a concentrated foreground", res.FG1[0])
	}
	if want := math.Sqrt(1.3); math.Abs(res.FG1[0]-want) > 1e-6 {
		t.Errorf("rsp_fg1[0] = %v, want %v", res.FG1[0], want)
	}
}

// The expected-foreground curve is the fg1 histogram scaled by coverage, and
// CDF area is linear in the histogram, so it must equal sqrt(coverage)·rsp_fg1
// at every center.
func TestScan_AbsoluteModeNullConsistency(t *testing.T) {
	bg := ScanCenters(8)
	fg1 := []float64{-math.Pi / 4, 0, 0, math.Pi / 4}

	res, err := Scan(fg1, bg, nil, Params{
		Window:     math.Pi / 2,
		Resolution: 4,
		Centers:    ScanCenters(16),
		Mode:       ModeAbsolute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sqrtCov := math.Sqrt(res.Coverage)
	for i := range res.Centers {
		want := sqrtCov * res.FG1[i]
		if math.Abs(res.Expected[i]-want) > 1e-6 {
			t.Errorf("center %d: rsp_expected = %v, want sqrt(coverage)*rsp_fg1 = %v",
				i, res.Expected[i], want)
		}
	}
}

func TestScan_BackgroundSelfNormalization(t *testing.T) {
	bg := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		bg = append(bg, -math.Pi+float64(i)*2*math.Pi/100)
	}
	fg1 := []float64{0.1, 0.2, 0.3}

	for _, p := range []Params{
		{Window: math.Pi / 3, Resolution: 5, Centers: ScanCenters(12), Mode: ModeAbsolute},
		{Window: math.Pi, Resolution: 9, Centers: ScanCenters(7), Mode: ModeAbsolute},
		{Window: 2 * math.Pi, Resolution: 16, Centers: ScanCenters(5), Mode: ModeAbsolute},
	} {
		res, err := Scan(fg1, bg, nil, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, v := range res.BG {
			if v != 1.0 {
				t.Errorf("window %v res %d: rsp_bg[%d] = %v, want exactly 1.0",
					p.Window, p.Resolution, i, v)
			}
		}
	}
}

// Multiplying every sample count by a positive constant leaves the RSP
// ratio unchanged, provided no bin is empty (epsilon substitution would
// otherwise introduce a bounded deviation).
func TestScan_InvariantUnderPopulationScaling(t *testing.T) {
	base := []float64{-0.3, -0.1, 0.05, 0.2, 0.4, 1.1, -1.0, 2.5}
	fg := []float64{-0.2, 0.0, 0.1, 0.3}

	repeat := func(s []float64, k int) []float64 {
		out := make([]float64, 0, len(s)*k)
		for i := 0; i < k; i++ {
			out = append(out, s...)
		}
		return out
	}

	p := Params{Window: 2 * math.Pi, Resolution: 4, Centers: ScanCenters(6), Mode: ModeAbsolute}

	res1, err := Scan(fg, base, nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res5, err := Scan(repeat(fg, 5), repeat(base, 5), nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range res1.FG1 {
		if math.Abs(res1.FG1[i]-res5.FG1[i]) > 1e-9 {
			t.Errorf("center %d: rsp_fg1 changed under 5x duplication: %v vs %v",
				i, res1.FG1[i], res5.FG1[i])
		}
	}
}

func TestScan_RelativeModeComparesTwoForegrounds(t *testing.T) {
	bg := ScanCenters(16)
	fg1 := []float64{-0.2, -0.1, 0, 0.1, 0.2}                                      // concentrated near 0
	fg2 := []float64{math.Pi - 0.2, math.Pi - 0.1, -math.Pi + 0.1, -math.Pi + 0.2} // near the seam

	res, err := Scan(fg1, bg, fg2, Params{
		Window:     math.Pi / 2,
		Resolution: 4,
		Centers:    []float64{0, math.Pi},
		Mode:       ModeRelative,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Expected != nil {
		t.Error("relative mode must not produce an expected-foreground curve")
	}
	if len(res.FG2) != 2 {
		t.Fatalf("rsp_fg2 length = %d, want 2", len(res.FG2))
	}
	if res.FG1[0] <= res.FG2[0] {
		t.Errorf("at center 0, fg1 (%v) should dominate fg2 (%v)", res.FG1[0], res.FG2[0])
	}
	if res.FG2[1] <= res.FG1[1] {
		t.Errorf("at center π, fg2 (%v) should dominate fg1 (%v)", res.FG2[1], res.FG1[1])
	}
}

func TestScan_ValidatesPreconditions(t *testing.T) {
	bg := ScanCenters(8)
	fg := []float64{0}
	centers := []float64{0}

	cases := []struct {
		name string
		fg1  []float64
		bg   []float64
		fg2  []float64
		p    Params
		want error
	}{
		{"zero window", fg, bg, nil,
			Params{Window: 0, Resolution: 4, Centers: centers, Mode: ModeAbsolute}, ErrWindowRange},
		{"oversized window", fg, bg, nil,
			Params{Window: 3 * math.Pi, Resolution: 4, Centers: centers, Mode: ModeAbsolute}, ErrWindowRange},
		{"zero resolution", fg, bg, nil,
			Params{Window: math.Pi, Resolution: 0, Centers: centers, Mode: ModeAbsolute}, ErrResolution},
		{"empty scan range", fg, bg, nil,
			Params{Window: math.Pi, Resolution: 4, Centers: nil, Mode: ModeAbsolute}, ErrEmptyScanRange},
		{"bad mode", fg, bg, nil,
			Params{Window: math.Pi, Resolution: 4, Centers: centers, Mode: "sideways"}, ErrUnsupportedMode},
		{"empty background", fg, nil, nil,
			Params{Window: math.Pi, Resolution: 4, Centers: centers, Mode: ModeAbsolute}, ErrEmptyBackground},
		{"relative without fg2", fg, bg, nil,
			Params{Window: math.Pi, Resolution: 4, Centers: centers, Mode: ModeRelative}, ErrMissingForeground2},
		{"absolute with fg2", fg, bg, fg,
			Params{Window: math.Pi, Resolution: 4, Centers: centers, Mode: ModeAbsolute}, ErrUnexpectedForeground2},
	}

	for _, c := range cases {
		_, err := Scan(c.fg1, c.bg, c.fg2, c.p)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got err %v, want %v", c.name, err, c.want)
		}
	}
}

// A single bin gives a one-point CDF whose trapezoidal integral is zero, so
// every curve degenerates to NaN. Callers get the degenerate values back
// rather than an error; resolution 1 passes validation.
func TestScan_SingleBinDegeneratesToNaN(t *testing.T) {
	bg := ScanCenters(8)
	fg1 := []float64{-0.25, 0, 0.25}

	res, err := Scan(fg1, bg, nil, Params{
		Window:     math.Pi / 2,
		Resolution: 1,
		Centers:    ScanCenters(4),
		Mode:       ModeAbsolute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range res.Centers {
		if !math.IsNaN(res.FG1[i]) || !math.IsNaN(res.BG[i]) || !math.IsNaN(res.Expected[i]) {
			t.Errorf("center %d: curves = (%v, %v, %v), want NaN for a single bin",
				i, res.FG1[i], res.BG[i], res.Expected[i])
		}
	}
}

func TestScan_CurvesAlignWithScanRange(t *testing.T) {
	bg := ScanCenters(32)
	fg := []float64{0.5, 0.6, 0.7}
	centers := []float64{2.0, -1.0, 0.5} // deliberately unsorted

	res, err := Scan(fg, bg, nil, Params{
		Window: math.Pi, Resolution: 6, Centers: centers, Mode: ModeAbsolute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.FG1) != 3 || len(res.BG) != 3 || len(res.Expected) != 3 {
		t.Fatal("curve lengths must match the scan range")
	}

	// Each output index must correspond to its own center: recompute one
	// center alone and compare.
	single, err := Scan(fg, bg, nil, Params{
		Window: math.Pi, Resolution: 6, Centers: centers[1:2], Mode: ModeAbsolute,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(single.FG1[0]-res.FG1[1]) > tol {
		t.Errorf("index correspondence broken: %v vs %v", single.FG1[0], res.FG1[1])
	}
}

func TestScan_SmoothingIsTunable(t *testing.T) {
	bg := ScanCenters(8)
	fg := []float64{0.01} // single point leaves most bins empty

	p := Params{Window: math.Pi, Resolution: 8, Centers: []float64{0}, Mode: ModeAbsolute}
	def, err := Scan(fg, bg, nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Smoothing = 0.5
	smoothed, err := Scan(fg, bg, nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.FG1[0] == smoothed.FG1[0] {
		t.Error("a larger smoothing constant should move the curve for near-empty windows")
	}
}
