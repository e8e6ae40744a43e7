package handler

import (
	"net/http"

	"horizonbot/internal/model"
	"horizonbot/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryHandler handles property inquiry submissions
type InquiryHandler struct {
	listingService *service.ListingService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(listingService *service.ListingService) *InquiryHandler {
	return &InquiryHandler{
		listingService: listingService,
	}
}

// Submit handles POST /api/v1/properties/:slug/inquiry
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req model.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.listingService.CreateInquiry(c.Request.Context(), c.Param("slug"), &req); err != nil {
		writeError(c, "Failed to submit inquiry", err)
		return
	}

	response := model.InquiryResponse{
		Success: true,
		Message: "Inquiry submitted successfully",
	}

	c.JSON(http.StatusCreated, response)
}
