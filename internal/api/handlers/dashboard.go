package handlers

import (
	"log"
	"net/http"
	"strconv"

	"dispatch-engine/internal/services"
	"dispatch-engine/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DashboardHandler holds dependencies for the operator dashboard API.
type DashboardHandler struct {
	dashboard services.DashboardService
	providers services.ProviderService
	validator *validator.Validate
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard services.DashboardService, providers services.ProviderService, validate *validator.Validate) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		providers: providers,
		validator: validate,
	}
}

// Stats returns the job and provider counters.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Error getting dashboard stats: %v", err)
		respondServiceError(c, err, "Failed to get dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Jobs returns every job with its broadcast history.
func (h *DashboardHandler) Jobs(c *gin.Context) {
	jobs, err := h.dashboard.Jobs(c.Request.Context())
	if err != nil {
		log.Printf("Error getting dashboard jobs: %v", err)
		respondServiceError(c, err, "Failed to get dashboard jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListProviders returns the provider directory with activity counts.
func (h *DashboardHandler) ListProviders(c *gin.Context) {
	providers, err := h.providers.ListProviders(c.Request.Context())
	if err != nil {
		log.Printf("Error listing providers: %v", err)
		respondServiceError(c, err, "Failed to list providers")
		return
	}
	c.JSON(http.StatusOK, providers)
}

// UpdateProvider applies a partial update to a provider and its contact.
func (h *DashboardHandler) UpdateProvider(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider ID format"})
		return
	}

	var req dto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	updated, err := h.providers.UpdateProvider(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error updating provider %d: %v", id, err)
		respondServiceError(c, err, "Failed to update provider")
		return
	}
	c.JSON(http.StatusOK, updated)
}
