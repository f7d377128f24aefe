package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/rsp"
	"github.com/spatialrsp/rsp-backend-go/internal/service"
	"github.com/spatialrsp/rsp-backend-go/pkg/response"
)

// ScanHandler handles HTTP requests for angular scans
type ScanHandler struct {
	scanService *service.ScanService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// isValidationError distinguishes caller mistakes from server faults
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		rsp.ErrWindowRange,
		rsp.ErrResolution,
		rsp.ErrEmptyBackground,
		rsp.ErrEmptyScanRange,
		rsp.ErrUnsupportedMode,
		rsp.ErrMissingForeground2,
		rsp.ErrUnexpectedForeground2,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Run handles POST /api/v1/scans/run — synchronous scan over raw angles
func (h *ScanHandler) Run(c *gin.Context) {
	var req models.RunScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	centers := req.Centers
	if len(centers) == 0 {
		centers = rsp.ScanCenters(req.CenterCount)
	}

	result, err := h.scanService.Run(req.ThetaFG1, req.ThetaBG, req.ThetaFG2, rsp.Params{
		Window:     req.Window,
		Resolution: req.Resolution,
		Centers:    centers,
		Mode:       rsp.Mode(req.Mode),
		Smoothing:  req.Smoothing,
	})
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, result)
}

// Create handles POST /api/v1/scans — asynchronous scan over stored samples
func (h *ScanHandler) Create(c *gin.Context) {
	var req models.CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.scanService.CreateTask(&req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(c, err.Error())
		} else {
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, task)
}

// List handles GET /api/v1/scans
func (h *ScanHandler) List(c *gin.Context) {
	tasks, err := h.scanService.ListTasks(c.Query("status"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, tasks)
}

// Get handles GET /api/v1/scans/:id
func (h *ScanHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid scan id")
		return
	}

	task, err := h.scanService.GetTask(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if task == nil {
		response.NotFound(c, "Scan not found")
		return
	}
	response.Success(c, task)
}

// Result handles GET /api/v1/scans/:id/result
func (h *ScanHandler) Result(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid scan id")
		return
	}

	result, err := h.scanService.GetTaskResult(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if result == nil {
		response.NotFound(c, "Scan result not available")
		return
	}
	response.Success(c, result)
}
