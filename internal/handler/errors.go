package handler

import (
	"errors"
	"net/http"

	"horizonbot/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP status codes
func writeError(c *gin.Context, prefix string, err error) {
	switch {
	case errors.Is(err, service.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, service.ErrInvalidSubmission):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": prefix + ": " + err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": prefix + ": " + err.Error()})
	}
}
