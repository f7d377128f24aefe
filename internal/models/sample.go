package models

import "time"

// Sample is a named angular population: an unordered set of angles in
// radians, each in (-π, π], positioned relative to a shared vantage point.
type Sample struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Label     string    `json:"label,omitempty" db:"label"` // free-form population label, e.g. cell type
	Angles    []float64 `json:"angles" db:"angles"`         // stored as a JSON array column
	N         int       `json:"n" db:"n"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateSampleRequest is the payload for registering an angular sample.
type CreateSampleRequest struct {
	Name   string    `json:"name" binding:"required"`
	Label  string    `json:"label"`
	Angles []float64 `json:"angles" binding:"required"`
}

// ProjectSampleRequest registers a sample from raw 2D embedding points,
// projected server-side around the vantage point.
type ProjectSampleRequest struct {
	Name    string      `json:"name" binding:"required"`
	Label   string      `json:"label"`
	Points  [][]float64 `json:"points" binding:"required"`
	Vantage [2]float64  `json:"vantage"`
}

// SampleSummary holds circular descriptive statistics for a sample.
type SampleSummary struct {
	N                int      `json:"n"`
	CircularMean     float64  `json:"circular_mean"`
	ResultantLength  float64  `json:"resultant_length"`
	CircularVariance float64  `json:"circular_variance"`
	CircularStdDev   *float64 `json:"circular_stddev,omitempty"` // omitted when the resultant length is 0
	RayleighP        float64  `json:"rayleigh_p"`
	Uniform          bool     `json:"uniform"`
	HistogramEntropy float64  `json:"histogram_entropy"` // bits, over 36 bins
}
