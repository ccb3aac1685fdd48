package routes

import (
	"dispatch-engine/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the operator dashboard API.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET("/stats", dashboardHandler.Stats)
	rg.GET("/jobs", dashboardHandler.Jobs)
	rg.GET("/providers", dashboardHandler.ListProviders)
	rg.PUT("/providers/:id", dashboardHandler.UpdateProvider)
}
