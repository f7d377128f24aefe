package rsp

// AreaUnderCDF computes the scaled area under the empirical CDF of a
// windowed histogram.
//
// The histogram counts are cumulatively summed into a CDF, which is then
// integrated over the bin centers by trapezoidal quadrature. The raw area is
// scaled by 2/windowWidth so that areas computed with different window
// widths and resolutions are comparable. In absolute mode a positive
// coverage ratio additionally scales the area, correcting for the
// foreground/background sample-size asymmetry against the null expectation.
//
// hist must hold len(edges)-1 strictly positive counts; the edges must span
// a non-zero width. Both are guaranteed by the scanning engine.
//
// Returns the scaled area and the CDF values at each bin.
func AreaUnderCDF(hist, edges []float64, coverage float64, mode Mode) (float64, []float64) {
	cdf := make([]float64, len(hist))
	var running float64
	for i, h := range hist {
		running += h
		cdf[i] = running
	}

	centers := make([]float64, len(hist))
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}

	// Trapezoidal integral of the CDF over the bin centers.
	var area float64
	for i := 0; i+1 < len(cdf); i++ {
		area += (centers[i+1] - centers[i]) * (cdf[i] + cdf[i+1]) / 2
	}

	windowWidth := edges[len(edges)-1] - edges[0]
	scaled := area * (2 / windowWidth)
	if mode == ModeAbsolute && coverage > 0 {
		scaled *= coverage
	}
	return scaled, cdf
}
