package routes

import (
	"dispatch-engine/internal/api/handlers"
	"dispatch-engine/internal/api/middleware"
	"dispatch-engine/internal/app"
	"dispatch-engine/internal/services"
	"dispatch-engine/internal/storage/postgres"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the repositories, services, and handlers and sets
// up the API routes by calling resource-specific registration functions.
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	router.Use(middleware.Logger())

	// --- Repositories ---
	jobRepo := postgres.NewJobRepo(app.DBPool)
	providerRepo := postgres.NewProviderRepo(app.DBPool)
	userRepo := postgres.NewUserRepo(app.DBPool)
	broadcastRepo := postgres.NewBroadcastRepo(app.DBPool)

	// --- Services ---
	jobService := services.NewJobService(jobRepo, providerRepo, broadcastRepo, app.Notifier, app.Config.Server.BaseURL)
	providerService := services.NewProviderService(providerRepo, userRepo)
	inboundService := services.NewInboundService(jobService, providerService)
	dashboardService := services.NewDashboardService(jobRepo, providerRepo, broadcastRepo, app.RedisClient)

	// --- Handlers ---
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	webhookHandler := handlers.NewWebhookHandler(inboundService, jobService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, providerService, app.Validator)

	// --- Register Resource Routes ---
	RegisterJobRoutes(router, jobHandler)
	RegisterWebhookRoutes(router, webhookHandler)
	RegisterDashboardRoutes(router.Group("/api/dashboard"), dashboardHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
