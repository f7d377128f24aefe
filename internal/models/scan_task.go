package models

import "time"

// ScanTask represents an asynchronous angular scan over stored samples.
// The worker transitions status pending → running → completed/failed and
// persists the result curves as JSON.
type ScanTask struct {
	ID int64 `json:"id" db:"id"`

	// Input samples
	FG1SampleID int64 `json:"fg1_sample_id" db:"fg1_sample_id"`
	BGSampleID  int64 `json:"bg_sample_id" db:"bg_sample_id"`
	FG2SampleID int64 `json:"fg2_sample_id,omitempty" db:"fg2_sample_id"` // 0 when absent

	// Scan parameters
	Window      float64 `json:"window" db:"window_width"`
	Resolution  int     `json:"resolution" db:"resolution"`
	CenterCount int     `json:"center_count" db:"center_count"`
	Mode        string  `json:"mode" db:"mode"`
	Smoothing   float64 `json:"smoothing,omitempty" db:"smoothing"`

	// Status
	Status       string `json:"status" db:"status"`
	ResultJSON   string `json:"-" db:"result_json"`
	ErrorMessage string `json:"error_message,omitempty" db:"error_message"`

	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	StartedAt   *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// ScanTask status constants
const (
	ScanStatusPending   = "pending"
	ScanStatusRunning   = "running"
	ScanStatusCompleted = "completed"
	ScanStatusFailed    = "failed"
)

// CreateScanRequest is the payload for creating an asynchronous scan task
// over stored samples.
type CreateScanRequest struct {
	FG1SampleID int64   `json:"fg1_sample_id" binding:"required"`
	BGSampleID  int64   `json:"bg_sample_id" binding:"required"`
	FG2SampleID int64   `json:"fg2_sample_id"`
	Window      float64 `json:"window" binding:"required"`
	Resolution  int     `json:"resolution" binding:"required"`
	CenterCount int     `json:"center_count" binding:"required"`
	Mode        string  `json:"mode" binding:"required"`
	Smoothing   float64 `json:"smoothing"`
}

// RunScanRequest is the payload for a synchronous scan over raw angle
// arrays, without persisting a task.
type RunScanRequest struct {
	ThetaFG1    []float64 `json:"theta_fg1" binding:"required"`
	ThetaBG     []float64 `json:"theta_bg" binding:"required"`
	ThetaFG2    []float64 `json:"theta_fg2"`
	Window      float64   `json:"window" binding:"required"`
	Resolution  int       `json:"resolution" binding:"required"`
	Centers     []float64 `json:"centers"`      // explicit scan centers, or
	CenterCount int       `json:"center_count"` // evenly spaced count when Centers is empty
	Mode        string    `json:"mode" binding:"required"`
	Smoothing   float64   `json:"smoothing"`
}

// CompareRequest is the payload for an RMSD comparison. Either two raw
// vectors, or two completed scan tasks plus a curve selector.
type CompareRequest struct {
	A []float64 `json:"a"`
	B []float64 `json:"b"`

	ScanA int64  `json:"scan_a"`
	ScanB int64  `json:"scan_b"`
	Curve string `json:"curve"` // fg1, fg2, expected or bg
}

// CompareResult reports an RMSD value. Defined is false for the legitimate
// "no signal" case where either input sums to zero; RMSD is null then.
type CompareResult struct {
	RMSD    *float64 `json:"rmsd"`
	Defined bool     `json:"defined"`
}
