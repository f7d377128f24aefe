package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/spatialrsp/rsp-backend-go/internal/config"
	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/repository"
	"github.com/spatialrsp/rsp-backend-go/internal/rsp"
	"github.com/spatialrsp/rsp-backend-go/internal/stats"
)

// ScanResult is a scan outcome enriched with curve summaries for API
// consumers.
type ScanResult struct {
	rsp.Result
	FG1Summary stats.CurveSummary `json:"fg1_summary"`
}

// ScanService orchestrates angular scans, both synchronous and as
// persisted asynchronous tasks.
type ScanService struct {
	repo    *repository.ScanRepository
	samples *repository.SampleRepository
	cfg     *config.Config
}

// NewScanService creates a new scan service
func NewScanService(repo *repository.ScanRepository, samples *repository.SampleRepository, cfg *config.Config) *ScanService {
	return &ScanService{repo: repo, samples: samples, cfg: cfg}
}

// Run executes a scan over raw angle arrays without persisting anything.
// The scan range is fanned out across cfg.ScanWorkers goroutines; each
// center is independent, so results are merged back by index.
func (s *ScanService) Run(fg1, bg, fg2 []float64, p rsp.Params) (*ScanResult, error) {
	if p.Smoothing == 0 {
		p.Smoothing = s.cfg.Smoothing
	}

	// Validate once up front so workers cannot fail independently.
	if err := p.Validate(fg1, bg, fg2); err != nil {
		return nil, err
	}

	workers := s.cfg.ScanWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(p.Centers) {
		workers = len(p.Centers)
	}

	merged := &rsp.Result{
		Centers:  p.Centers,
		Mode:     p.Mode,
		FG1:      make([]float64, len(p.Centers)),
		BG:       make([]float64, len(p.Centers)),
		Coverage: float64(len(fg1)) / float64(len(bg)),
	}
	if p.Mode == rsp.ModeAbsolute {
		merged.Expected = make([]float64, len(p.Centers))
	} else {
		merged.FG2 = make([]float64, len(p.Centers))
	}

	chunk := (len(p.Centers) + workers - 1) / workers
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(p.Centers) {
			end = len(p.Centers)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			sub := p
			sub.Centers = p.Centers[start:end]
			res, err := rsp.Scan(fg1, bg, fg2, sub)
			if err != nil {
				errs[w] = err
				return
			}
			copy(merged.FG1[start:end], res.FG1)
			copy(merged.BG[start:end], res.BG)
			if res.Expected != nil {
				copy(merged.Expected[start:end], res.Expected)
			}
			if res.FG2 != nil {
				copy(merged.FG2[start:end], res.FG2)
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &ScanResult{
		Result:     *merged,
		FG1Summary: stats.SummarizeCurve(merged.Centers, merged.FG1),
	}, nil
}

// CreateTask validates a scan request against the stored samples, persists
// a pending task, and starts the scan worker asynchronously.
func (s *ScanService) CreateTask(req *models.CreateScanRequest) (*models.ScanTask, error) {
	mode := rsp.Mode(req.Mode)
	if !mode.Valid() {
		return nil, rsp.ErrUnsupportedMode
	}
	if err := rsp.ValidateWindow(req.Window); err != nil {
		return nil, err
	}
	if req.Resolution < 1 {
		return nil, rsp.ErrResolution
	}
	if req.CenterCount < 1 {
		return nil, rsp.ErrEmptyScanRange
	}
	if mode == rsp.ModeRelative && req.FG2SampleID == 0 {
		return nil, rsp.ErrMissingForeground2
	}
	if mode == rsp.ModeAbsolute && req.FG2SampleID != 0 {
		return nil, rsp.ErrUnexpectedForeground2
	}

	// The referenced samples must exist before the worker starts.
	for _, id := range []int64{req.FG1SampleID, req.BGSampleID} {
		sample, err := s.samples.GetByID(id)
		if err != nil {
			return nil, err
		}
		if sample == nil {
			return nil, fmt.Errorf("sample %d not found", id)
		}
	}
	if req.FG2SampleID != 0 {
		sample, err := s.samples.GetByID(req.FG2SampleID)
		if err != nil {
			return nil, err
		}
		if sample == nil {
			return nil, fmt.Errorf("sample %d not found", req.FG2SampleID)
		}
	}

	task := &models.ScanTask{
		FG1SampleID: req.FG1SampleID,
		BGSampleID:  req.BGSampleID,
		FG2SampleID: req.FG2SampleID,
		Window:      req.Window,
		Resolution:  req.Resolution,
		CenterCount: req.CenterCount,
		Mode:        req.Mode,
		Smoothing:   req.Smoothing,
	}
	if err := s.repo.Create(task); err != nil {
		return nil, err
	}

	go s.runTask(task.ID)
	return task, nil
}

// runTask is the asynchronous scan worker for a persisted task
func (s *ScanService) runTask(taskID int64) {
	log.Printf("[ScanService] Starting scan worker for task %d", taskID)

	task, err := s.repo.GetByID(taskID)
	if err != nil || task == nil {
		log.Printf("[ScanService] Task %d not found: %v", taskID, err)
		return
	}

	if err := s.repo.MarkRunning(taskID); err != nil {
		log.Printf("[ScanService] Failed to mark task %d running: %v", taskID, err)
		return
	}

	result, err := s.executeTask(task)
	if err != nil {
		log.Printf("[ScanService] Task %d failed: %v", taskID, err)
		if markErr := s.repo.MarkFailed(taskID, err.Error()); markErr != nil {
			log.Printf("[ScanService] Failed to mark task %d failed: %v", taskID, markErr)
		}
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("[ScanService] Task %d result serialization failed: %v", taskID, err)
		s.repo.MarkFailed(taskID, err.Error())
		return
	}

	if err := s.repo.MarkCompleted(taskID, string(payload)); err != nil {
		log.Printf("[ScanService] Failed to mark task %d completed: %v", taskID, err)
		return
	}
	log.Printf("[ScanService] Task %d completed (%d centers)", taskID, task.CenterCount)
}

// executeTask loads the task's samples and runs the scan
func (s *ScanService) executeTask(task *models.ScanTask) (*ScanResult, error) {
	fg1, err := s.loadAngles(task.FG1SampleID)
	if err != nil {
		return nil, err
	}
	bg, err := s.loadAngles(task.BGSampleID)
	if err != nil {
		return nil, err
	}
	var fg2 []float64
	if task.FG2SampleID != 0 {
		fg2, err = s.loadAngles(task.FG2SampleID)
		if err != nil {
			return nil, err
		}
	}

	return s.Run(fg1, bg, fg2, rsp.Params{
		Window:     task.Window,
		Resolution: task.Resolution,
		Centers:    rsp.ScanCenters(task.CenterCount),
		Mode:       rsp.Mode(task.Mode),
		Smoothing:  task.Smoothing,
	})
}

func (s *ScanService) loadAngles(sampleID int64) ([]float64, error) {
	sample, err := s.samples.GetByID(sampleID)
	if err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, fmt.Errorf("sample %d not found", sampleID)
	}
	return sample.Angles, nil
}

// GetTask retrieves a scan task; nil when not found
func (s *ScanService) GetTask(id int64) (*models.ScanTask, error) {
	return s.repo.GetByID(id)
}

// ListTasks returns scan tasks, optionally filtered by status
func (s *ScanService) ListTasks(status string) ([]models.ScanTask, error) {
	return s.repo.List(status)
}

// GetTaskResult decodes the stored curves of a completed task. Returns nil
// when the task does not exist or has no result yet.
func (s *ScanService) GetTaskResult(id int64) (*ScanResult, error) {
	task, err := s.repo.GetByID(id)
	if err != nil || task == nil {
		return nil, err
	}
	if task.ResultJSON == "" {
		return nil, nil
	}

	var result ScanResult
	if err := json.Unmarshal([]byte(task.ResultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to decode result for task %d: %w", id, err)
	}
	return &result, nil
}
