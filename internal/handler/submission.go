package handler

import (
	"net/http"

	"horizonbot/internal/model"
	"horizonbot/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles the sell and interior design forms
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// SubmitSell handles POST /api/v1/sell/:kind
func (h *SubmissionHandler) SubmitSell(c *gin.Context) {
	kind := model.SellKind(c.Param("kind"))
	if kind != model.SellResidential && kind != model.SellCommercial {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown sell listing kind: " + string(kind)})
		return
	}

	var req model.SellListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	listing, err := h.submissionService.SubmitSellListing(c.Request.Context(), kind, &req)
	if err != nil {
		writeError(c, "Failed to submit property", err)
		return
	}

	c.JSON(http.StatusCreated, model.SubmissionResponse{
		Success: true,
		Message: "Property submitted successfully!",
		ID:      listing.ID,
	})
}

// SubmitInteriorDesign handles POST /api/v1/interior-design
func (h *SubmissionHandler) SubmitInteriorDesign(c *gin.Context) {
	var body model.InteriorDesignRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req, err := h.submissionService.SubmitInteriorDesign(c.Request.Context(), &body)
	if err != nil {
		writeError(c, "Failed to submit interior design request", err)
		return
	}

	c.JSON(http.StatusCreated, model.SubmissionResponse{
		Success: true,
		Message: "Your interior design request has been submitted successfully!",
		ID:      req.ID,
	})
}
