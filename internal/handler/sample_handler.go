package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/service"
	"github.com/spatialrsp/rsp-backend-go/pkg/response"
)

// SampleHandler handles HTTP requests for angular samples
type SampleHandler struct {
	sampleService *service.SampleService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(sampleService *service.SampleService) *SampleHandler {
	return &SampleHandler{sampleService: sampleService}
}

// Create handles POST /api/v1/samples
func (h *SampleHandler) Create(c *gin.Context) {
	var req models.CreateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sample, err := h.sampleService.Create(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, sample)
}

// Project handles POST /api/v1/samples/project
func (h *SampleHandler) Project(c *gin.Context) {
	var req models.ProjectSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sample, err := h.sampleService.Project(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, sample)
}

// List handles GET /api/v1/samples
func (h *SampleHandler) List(c *gin.Context) {
	samples, err := h.sampleService.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, samples)
}

// Get handles GET /api/v1/samples/:id
func (h *SampleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sample id")
		return
	}

	sample, err := h.sampleService.Get(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if sample == nil {
		response.NotFound(c, "Sample not found")
		return
	}
	response.Success(c, sample)
}

// Summary handles GET /api/v1/samples/:id/summary
func (h *SampleHandler) Summary(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sample id")
		return
	}

	summary, err := h.sampleService.Summarize(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if summary == nil {
		response.NotFound(c, "Sample not found")
		return
	}
	response.Success(c, summary)
}

// Delete handles DELETE /api/v1/samples/:id
func (h *SampleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sample id")
		return
	}

	if err := h.sampleService.Delete(id); err != nil {
		response.NotFound(c, "Sample not found")
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
