package handler

import (
	"net/http"

	"horizonbot/internal/model"
	"horizonbot/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles property browse and detail requests
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// List handles GET /api/v1/properties
func (h *ListingHandler) List(c *gin.Context) {
	var req model.ListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
		return
	}

	response, err := h.listingService.List(c.Request.Context(), &req)
	if err != nil {
		writeError(c, "Failed to list properties", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/properties/:slug
func (h *ListingHandler) Get(c *gin.Context) {
	detail, err := h.listingService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, "Failed to get property", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
