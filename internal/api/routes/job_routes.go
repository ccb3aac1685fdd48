package routes

import (
	"dispatch-engine/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job requests. The
// claim route is served at the root so the links sent to providers stay
// short.
func RegisterJobRoutes(router *gin.Engine, jobHandler *handlers.JobHandler) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", jobHandler.CreateJob)      // Web form intake
		jobs.GET("", jobHandler.ListJobs)        // List all job requests
		jobs.GET("/:id", jobHandler.GetJobByID)  // Get a specific job by ID
		jobs.GET("/:id/claim", jobHandler.ClaimJob) // Claim link from the broadcast message
	}
}
