package rsp

import (
	"math"
)

// Mode selects the comparison scheme for a scan.
type Mode string

const (
	// ModeAbsolute compares one foreground against the background and
	// against a coverage-scaled null expectation.
	ModeAbsolute Mode = "absolute"

	// ModeRelative compares two foregrounds against each other and against
	// the background, without a null expectation.
	ModeRelative Mode = "relative"
)

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == ModeAbsolute || m == ModeRelative
}

// MachineEpsilon is the default replacement for empty histogram bins. It
// keeps the CDF strictly increasing so the area integral reflects
// distribution shape rather than resolution. A numerical-stability patch,
// not a statistical smoothing choice.
var MachineEpsilon = math.Nextafter(1, 2) - 1

// Params configures one angular scan.
type Params struct {
	Window     float64   // window width in radians, must be in (0, 2π]
	Resolution int       // equal-width bins per window, must be >= 1
	Centers    []float64 // ordered scan centers; output curves align by index
	Mode       Mode
	Smoothing  float64 // zero-bin replacement; 0 selects MachineEpsilon
}

// Validate checks the scan parameters together with the populations they
// will be applied to. All precondition failures surface here, before any
// numeric work starts.
func (p Params) Validate(fg1, bg, fg2 []float64) error {
	if err := ValidateWindow(p.Window); err != nil {
		return err
	}
	if p.Resolution < 1 {
		return ErrResolution
	}
	if len(p.Centers) == 0 {
		return ErrEmptyScanRange
	}
	if !p.Mode.Valid() {
		return ErrUnsupportedMode
	}
	if len(bg) == 0 {
		return ErrEmptyBackground
	}
	if p.Mode == ModeRelative && len(fg2) == 0 {
		return ErrMissingForeground2
	}
	if p.Mode == ModeAbsolute && len(fg2) != 0 {
		return ErrUnexpectedForeground2
	}
	return nil
}

func (p Params) smoothing() float64 {
	if p.Smoothing > 0 {
		return p.Smoothing
	}
	return MachineEpsilon
}

// Result holds the RSP curves produced by a scan, aligned by index with the
// scan centers. FG2 is populated in relative mode, Expected in absolute
// mode; the unused curve is nil. BG is identically 1 by construction.
type Result struct {
	Centers  []float64 `json:"centers"`
	Mode     Mode      `json:"mode"`
	Coverage float64   `json:"coverage"`
	FG1      []float64 `json:"rsp_fg1"`
	FG2      []float64 `json:"rsp_fg2,omitempty"`
	Expected []float64 `json:"rsp_expected,omitempty"`
	BG       []float64 `json:"rsp_bg"`
}

// Scan computes RSP curves for the foreground population(s) against the
// background over every scan center in p.Centers.
//
// For each center the populations are wrapped relative to the center,
// masked to ±window/2, and histogrammed into p.Resolution bins. Empty bins
// are replaced by the smoothing constant before the area under the CDF is
// taken. The RSP value for a population is sqrt(area/area_bg), so the
// background curve equals 1 at every center.
//
// In absolute mode the foreground histogram scaled by the coverage ratio
// len(fg1)/len(bg) yields an expected-foreground curve representing the
// null hypothesis that fg1 is a uniform coverage-fraction sample of the
// background. In relative mode fg2 is scanned the same way as fg1.
//
// The call is pure: no state persists between centers, and the input
// slices are never mutated.
func Scan(fg1, bg, fg2 []float64, p Params) (*Result, error) {
	if err := p.Validate(fg1, bg, fg2); err != nil {
		return nil, err
	}

	edges := linspace(-p.Window/2, p.Window/2, p.Resolution)
	coverage := float64(len(fg1)) / float64(len(bg))
	eps := p.smoothing()

	res := &Result{
		Centers:  p.Centers,
		Mode:     p.Mode,
		Coverage: coverage,
		FG1:      make([]float64, len(p.Centers)),
		BG:       make([]float64, len(p.Centers)),
	}
	if p.Mode == ModeAbsolute {
		res.Expected = make([]float64, len(p.Centers))
	} else {
		res.FG2 = make([]float64, len(p.Centers))
	}

	for i, center := range p.Centers {
		histBG := windowedHistogram(bg, center, p.Window, edges, eps)
		histFG1 := windowedHistogram(fg1, center, p.Window, edges, eps)

		areaBG, _ := AreaUnderCDF(histBG, edges, coverage, p.Mode)
		areaFG1, _ := AreaUnderCDF(histFG1, edges, coverage, p.Mode)

		res.BG[i] = math.Sqrt(areaBG / areaBG)
		res.FG1[i] = math.Sqrt(areaFG1 / areaBG)

		switch p.Mode {
		case ModeAbsolute:
			expected := make([]float64, len(histFG1))
			for j, h := range histFG1 {
				expected[j] = h * coverage
			}
			areaExp, _ := AreaUnderCDF(expected, edges, coverage, p.Mode)
			res.Expected[i] = math.Sqrt(areaExp / areaBG)
		case ModeRelative:
			histFG2 := windowedHistogram(fg2, center, p.Window, edges, eps)
			areaFG2, _ := AreaUnderCDF(histFG2, edges, coverage, p.Mode)
			res.FG2[i] = math.Sqrt(areaFG2 / areaBG)
		}
	}
	return res, nil
}

// windowedHistogram wraps the population relative to center, keeps the
// samples within ±width/2, and counts them into the window's bins. Zero
// bins are replaced by eps so every bin is strictly positive.
func windowedHistogram(theta []float64, center, width float64, edges []float64, eps float64) []float64 {
	half := width / 2
	lo := edges[0]
	binWidth := (edges[len(edges)-1] - edges[0]) / float64(len(edges)-1)
	hist := make([]float64, len(edges)-1)

	for _, t := range theta {
		rel := ShiftAngle(t, center)
		if math.Abs(rel) > half {
			continue
		}
		idx := int((rel - lo) / binWidth)
		// The rightmost edge is inclusive.
		if idx >= len(hist) {
			idx = len(hist) - 1
		}
		if idx < 0 {
			idx = 0
		}
		hist[idx]++
	}

	for i, h := range hist {
		if h == 0 {
			hist[i] = eps
		}
	}
	return hist
}
