package service

import (
	"fmt"
	"math"

	"github.com/spatialrsp/rsp-backend-go/internal/config"
	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/repository"
	"github.com/spatialrsp/rsp-backend-go/internal/spatial"
	"github.com/spatialrsp/rsp-backend-go/internal/stats"
)

// summaryBins is the histogram resolution for sample entropy (10° bins).
const summaryBins = 36

// SampleService handles angular sample business logic
type SampleService struct {
	repo *repository.SampleRepository
	cfg  *config.Config
}

// NewSampleService creates a new sample service
func NewSampleService(repo *repository.SampleRepository, cfg *config.Config) *SampleService {
	return &SampleService{repo: repo, cfg: cfg}
}

// Create validates and stores an angular sample. Angles are normalized to
// the canonical (-π, π] range before storage.
func (s *SampleService) Create(req *models.CreateSampleRequest) (*models.Sample, error) {
	if len(req.Angles) == 0 {
		return nil, fmt.Errorf("sample must contain at least one angle")
	}
	if len(req.Angles) > s.cfg.MaxSampleSize {
		return nil, fmt.Errorf("sample exceeds maximum size of %d angles", s.cfg.MaxSampleSize)
	}
	for _, a := range req.Angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, fmt.Errorf("angles must be finite")
		}
	}

	sample := &models.Sample{
		Name:   req.Name,
		Label:  req.Label,
		Angles: spatial.NormalizeAngles(req.Angles),
	}
	if err := s.repo.Create(sample); err != nil {
		return nil, err
	}
	return sample, nil
}

// Project converts raw 2D embedding points to polar angles around the
// vantage point and stores them as a sample. The radial coordinate is
// discarded; only the angular positions feed the scanning engine.
func (s *SampleService) Project(req *models.ProjectSampleRequest) (*models.Sample, error) {
	if len(req.Points) == 0 {
		return nil, fmt.Errorf("sample must contain at least one point")
	}

	theta, _, err := spatial.CartesianToPolar(req.Points, spatial.Vantage{
		X: req.Vantage[0],
		Y: req.Vantage[1],
	})
	if err != nil {
		return nil, err
	}

	return s.Create(&models.CreateSampleRequest{
		Name:   req.Name,
		Label:  req.Label,
		Angles: theta,
	})
}

// Get retrieves a sample with its angles; nil when not found
func (s *SampleService) Get(id int64) (*models.Sample, error) {
	return s.repo.GetByID(id)
}

// List returns sample metadata
func (s *SampleService) List() ([]models.Sample, error) {
	return s.repo.List()
}

// Delete removes a sample
func (s *SampleService) Delete(id int64) error {
	return s.repo.Delete(id)
}

// Summarize computes circular descriptive statistics for a stored sample
func (s *SampleService) Summarize(id int64) (*models.SampleSummary, error) {
	sample, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, nil
	}
	return summarizeAngles(sample.Angles), nil
}

// summarizeAngles computes the summary for a set of canonical angles. The
// circular standard deviation is unbounded for a perfectly balanced sample
// (resultant length 0); the field is left out in that case so the summary
// always survives JSON encoding.
func summarizeAngles(angles []float64) *models.SampleSummary {
	// Fixed-resolution angular histogram for the entropy estimate.
	hist := make([]float64, summaryBins)
	binWidth := 2 * math.Pi / summaryBins
	for _, a := range angles {
		idx := int((a + math.Pi) / binWidth)
		if idx >= summaryBins {
			idx = summaryBins - 1
		}
		if idx < 0 {
			idx = 0
		}
		hist[idx]++
	}

	summary := &models.SampleSummary{
		N:                len(angles),
		CircularMean:     spatial.CircularMean(angles),
		ResultantLength:  spatial.MeanResultantLength(angles),
		CircularVariance: spatial.CircularVariance(angles),
		RayleighP:        spatial.RayleighP(angles),
		Uniform:          spatial.IsCircularUniform(angles),
		HistogramEntropy: stats.ShannonEntropy(hist),
	}
	if sd := spatial.CircularStdDev(angles); !math.IsInf(sd, 1) {
		summary.CircularStdDev = &sd
	}
	return summary
}
