package handlers

import (
	"errors"
	"net/http"

	"dispatch-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into the matching HTTP
// status and JSON body.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, gin.H{"error": "Job has already been claimed"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
