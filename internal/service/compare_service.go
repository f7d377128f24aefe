package service

import (
	"fmt"
	"math"

	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/rsp"
)

// CompareService computes RMSD comparisons between raw vectors or stored
// scan curves.
type CompareService struct {
	scans *ScanService
}

// NewCompareService creates a new compare service
func NewCompareService(scans *ScanService) *CompareService {
	return &CompareService{scans: scans}
}

// Compare dispatches on the request shape: two raw vectors, or two
// completed scans plus a curve selector.
func (s *CompareService) Compare(req *models.CompareRequest) (*models.CompareResult, error) {
	if len(req.A) > 0 || len(req.B) > 0 {
		return s.compareVectors(req.A, req.B)
	}
	if req.ScanA != 0 && req.ScanB != 0 {
		return s.compareScans(req.ScanA, req.ScanB, req.Curve)
	}
	return nil, fmt.Errorf("either two vectors or two scan ids are required")
}

func (s *CompareService) compareVectors(a, b []float64) (*models.CompareResult, error) {
	value, err := rsp.RMSD(a, b)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(value) {
		// Legitimate "no signal" condition for zero-sum distributions.
		return &models.CompareResult{Defined: false}, nil
	}
	return &models.CompareResult{RMSD: &value, Defined: true}, nil
}

func (s *CompareService) compareScans(scanA, scanB int64, curve string) (*models.CompareResult, error) {
	a, err := s.curveOf(scanA, curve)
	if err != nil {
		return nil, err
	}
	b, err := s.curveOf(scanB, curve)
	if err != nil {
		return nil, err
	}
	return s.compareVectors(a, b)
}

func (s *CompareService) curveOf(scanID int64, curve string) ([]float64, error) {
	result, err := s.scans.GetTaskResult(scanID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("scan %d has no result", scanID)
	}

	switch curve {
	case "", "fg1":
		return result.FG1, nil
	case "fg2":
		if result.FG2 == nil {
			return nil, fmt.Errorf("scan %d has no fg2 curve", scanID)
		}
		return result.FG2, nil
	case "expected":
		if result.Expected == nil {
			return nil, fmt.Errorf("scan %d has no expected curve", scanID)
		}
		return result.Expected, nil
	case "bg":
		return result.BG, nil
	default:
		return nil, fmt.Errorf("unknown curve %q: want fg1, fg2, expected or bg", curve)
	}
}
