package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/spatialrsp/rsp-backend-go/internal/models"
	"github.com/spatialrsp/rsp-backend-go/internal/service"
	"github.com/spatialrsp/rsp-backend-go/pkg/response"
)

// CompareHandler handles HTTP requests for RMSD comparisons
type CompareHandler struct {
	compareService *service.CompareService
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(compareService *service.CompareService) *CompareHandler {
	return &CompareHandler{compareService: compareService}
}

// Compare handles POST /api/v1/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.compareService.Compare(&req)
	if err != nil {
		// Every comparator failure is a caller mistake: mismatched lengths,
		// empty vectors, unknown curve selectors or missing scans.
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, result)
}
